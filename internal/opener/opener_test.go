package opener

import (
	"reflect"
	"testing"
)

func TestCommand(t *testing.T) {
	cases := []struct {
		goos string
		name string
		args []string
	}{
		{"darwin", "open", []string{"/r/report.xlsx"}},
		{"windows", "cmd", []string{"/c", "start", "", "/r/report.xlsx"}},
		{"linux", "xdg-open", []string{"/r/report.xlsx"}},
		{"freebsd", "xdg-open", []string{"/r/report.xlsx"}},
	}

	for _, tc := range cases {
		name, args := Command(tc.goos, "/r/report.xlsx")
		if name != tc.name || !reflect.DeepEqual(args, tc.args) {
			t.Errorf("Command(%s) = %s %v, want %s %v", tc.goos, name, args, tc.name, tc.args)
		}
	}
}
