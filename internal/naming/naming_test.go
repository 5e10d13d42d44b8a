package naming

import (
	"path/filepath"
	"testing"
)

func TestSanitizePath(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain path", "/media/in", "/media/in"},
		{"wrapping quotes", `"/media/in"`, "/media/in"},
		{"quotes and spaces", `  "/media/my videos"  `, "/media/my videos"},
		{"trailing newline", "/media/in\n", "/media/in"},
		{"windows path", `"C:\Users\me\Videos" `, `C:\Users\me\Videos`},
		{"inner quote removed", `/media/a"b`, "/media/ab"},
		{"inner spaces kept", "/media/a  b", "/media/a  b"},
		{"single quotes kept", "'/media/in'", "'/media/in'"},
		{"trailing slash kept", "/media/in/", "/media/in/"},
		{"empty", "", ""},
		{"only quotes", `""`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizePath(tt.in); got != tt.want {
				t.Errorf("SanitizePath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name      string
		outputDir string
		filename  string
		want      string
	}{
		{"simple", "/out", "a.mp4", filepath.Join("/out", "edited_a.mp4")},
		{"quoted dir", `"/out dir" `, "c.mov", filepath.Join("/out dir", "edited_c.mov")},
		{"filename with spaces", "/out", "my clip.mkv", filepath.Join("/out", "edited_my clip.mkv")},
		{"relative dir", "out", "x.avi", filepath.Join("out", "edited_x.avi")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutputPath(tt.outputDir, tt.filename); got != tt.want {
				t.Errorf("OutputPath(%q, %q) = %q, want %q", tt.outputDir, tt.filename, got, tt.want)
			}
		})
	}
}

func TestOutputClaims(t *testing.T) {
	c := NewOutputClaims()

	if _, ok := c.Claim("/in/ab.mp4", "/out/edited_ab.mp4"); !ok {
		t.Fatal("first claim should succeed")
	}
	if _, ok := c.Claim("/in/ab.mp4", "/out/edited_ab.mp4"); !ok {
		t.Error("re-claim by the same input should succeed")
	}
	owner, ok := c.Claim(`/in/a"b.mp4`, `/out/edited_a"b.mp4`)
	if ok {
		t.Fatal("conflicting claim should fail")
	}
	if owner != "/in/ab.mp4" {
		t.Errorf("owner = %q, want /in/ab.mp4", owner)
	}
	if _, ok := c.Claim("/in/c.mp4", "/out/edited_c.mp4"); !ok {
		t.Error("unrelated claim should succeed")
	}
}
