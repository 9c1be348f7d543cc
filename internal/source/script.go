package source

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// Errors reported by the script source.
var (
	ErrNoContentFunc = errors.New("script does not define a content() function")
	ErrBadScriptType = errors.New("script content() must return a string")
)

// Script evaluates a Lua file whose global content() function produces
// the text to scroll. The function is called once per poll; the content
// is considered changed when the returned string differs.
//
// The Lua state is not goroutine-safe; a Script must be polled from a
// single goroutine, which the tick driver guarantees.
type Script struct {
	path  string
	state *lua.LState
	last  string
}

// NewScript loads the Lua file at path and verifies it defines
// content().
func NewScript(path string) (*Script, error) {
	L := lua.NewState()
	if err := L.DoFile(path); err != nil {
		L.Close()
		return nil, fmt.Errorf("loading script %s: %w", path, err)
	}
	if _, ok := L.GetGlobal("content").(*lua.LFunction); !ok {
		L.Close()
		return nil, fmt.Errorf("%w: %s", ErrNoContentFunc, path)
	}
	return &Script{path: path, state: L}, nil
}

// Initial calls content() once and captures its output.
func (s *Script) Initial() (Content, error) {
	out, err := s.call()
	if err != nil {
		return Content{}, err
	}
	s.last = out
	return Content{Running: out}, nil
}

// Poll calls content() again and reports whether the output changed.
func (s *Script) Poll() (Content, bool, error) {
	out, err := s.call()
	if err != nil {
		return Content{}, false, err
	}
	if out == s.last {
		return Content{}, false, nil
	}
	s.last = out
	return Content{Running: out}, true, nil
}

// Close releases the Lua state.
func (s *Script) Close() {
	s.state.Close()
}

func (s *Script) call() (string, error) {
	err := s.state.CallByParam(lua.P{
		Fn:      s.state.GetGlobal("content"),
		NRet:    1,
		Protect: true,
	})
	if err != nil {
		return "", fmt.Errorf("script %s: %w", s.path, err)
	}
	ret := s.state.Get(-1)
	s.state.Pop(1)
	str, ok := ret.(lua.LString)
	if !ok {
		return "", fmt.Errorf("%w: got %s", ErrBadScriptType, ret.Type())
	}
	return string(str), nil
}
