// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package wslutil

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeBridge wires a Bridge against an in-memory Windows layout:
// PATH directories map to Windows paths, and Windows Program Files
// directories map back to /mnt prefixes.
func fakeBridge(pathDirs []string, toWindows map[string]string, existing map[string]bool) *Bridge {
	return &Bridge{
		Translate: func(direction, path string) (string, error) {
			switch direction {
			case "-w":
				if win, ok := toWindows[path]; ok {
					return win, nil
				}
				return "", errors.New("wslpath: no translation")
			case "-u":
				// C:\Program Files (x86) -> /mnt/c/Program Files (x86)
				if len(path) < 2 || path[1] != ':' {
					return "", errors.New("wslpath: bad windows path")
				}
				drive := strings.ToLower(path[:1])
				rest := strings.ReplaceAll(path[2:], `\`, "/")
				return "/mnt/" + drive + rest + "\n", nil
			}
			return "", errors.New("wslpath: bad flag")
		},
		Exists:   func(p string) bool { return existing[p] },
		PathList: func() []string { return pathDirs },
	}
}

func TestDriveRoots(t *testing.T) {
	b := fakeBridge(
		[]string{"/usr/bin", "/mnt/c/Windows", "/mnt/c/Windows/System32", "/mnt/d/tools", "/missing"},
		map[string]string{
			"/usr/bin":               `\\wsl$\Ubuntu\usr\bin`,
			"/mnt/c/Windows":         `C:\Windows`,
			"/mnt/c/Windows/System32": `c:\Windows\System32`,
			"/mnt/d/tools":           `D:\tools`,
		},
		map[string]bool{
			"/usr/bin":                true,
			"/mnt/c/Windows":          true,
			"/mnt/c/Windows/System32": true,
			"/mnt/d/tools":            true,
		},
	)

	// UNC paths carry no drive letter, lowercase letters are normalized,
	// duplicates collapse, missing dirs are skipped.
	assert.Equal(t, []string{"C", "D"}, b.DriveRoots())
}

func TestDriveRootsAllFailuresYieldEmpty(t *testing.T) {
	b := fakeBridge([]string{"/usr/bin"}, nil, nil)
	assert.Empty(t, b.DriveRoots())
}

func TestProgramFilesPrefixes(t *testing.T) {
	b := fakeBridge(
		[]string{"/mnt/c/Windows"},
		map[string]string{"/mnt/c/Windows": `C:\Windows`},
		map[string]bool{"/mnt/c/Windows": true},
	)

	assert.Equal(t, []string{
		"/mnt/c/Program Files",
		"/mnt/c/Program Files (x86)",
	}, b.ProgramFilesPrefixes(), "translated prefixes must be trimmed of wslpath's trailing newline")
}

func TestResolveBridgedPath(t *testing.T) {
	layout := func(existing ...string) *Bridge {
		m := map[string]bool{"/mnt/c/Windows": true}
		for _, p := range existing {
			m[p] = true
		}
		return fakeBridge(
			[]string{"/mnt/c/Windows"},
			map[string]string{"/mnt/c/Windows": `C:\Windows`},
			m,
		)
	}

	tests := []struct {
		name     string
		existing []string
		dirs     []string
		want     string
	}{
		{
			name:     "stable install found",
			existing: []string{"/mnt/c/Program Files (x86)/Microsoft/Edge/Application/msedge.exe"},
			dirs:     []string{"Edge"},
			want:     "/mnt/c/Program Files (x86)/Microsoft/Edge/Application/msedge.exe",
		},
		{
			name:     "second channel name tried",
			existing: []string{"/mnt/c/Program Files/Microsoft/Edge Dev/Application/msedge.exe"},
			dirs:     []string{"Edge", "Edge Dev"},
			want:     "/mnt/c/Program Files/Microsoft/Edge Dev/Application/msedge.exe",
		},
		{
			name: "nothing installed falls back to hardcoded default",
			dirs: []string{"Edge SxS"},
			want: DefaultBridgedPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, layout(tt.existing...).ResolveBridgedPath(tt.dirs...))
		})
	}
}

func TestResolveBridgedPathNeverErrors(t *testing.T) {
	// A bridge where every translation fails must still yield the default.
	b := fakeBridge([]string{"/mnt/c/Windows"}, nil, map[string]bool{"/mnt/c/Windows": true})
	assert.Equal(t, DefaultBridgedPath, b.ResolveBridgedPath("Edge"))
}

func TestDriveLetterPattern(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`C:\Windows`, "C"},
		{`c:\windows`, "c"},
		{`D:\`, "D"},
		{`\\wsl$\Ubuntu`, ""},
		{`/mnt/c/Windows`, ""},
	}
	for _, tt := range tests {
		m := driveLetterPattern.FindStringSubmatch(tt.in)
		if tt.want == "" {
			assert.Nil(t, m, tt.in)
		} else {
			assert.Equal(t, tt.want, m[1], tt.in)
		}
	}
}
