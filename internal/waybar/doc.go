// Package waybar emits scroll frames as the JSON lines waybar's custom
// module protocol expects, one object per update.
package waybar
