// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package version

import (
	"runtime"
	"runtime/debug"
	"strings"
	"testing"

	"go.astrophena.name/docfmt/internal/testutil"
)

func TestLoadInfo(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		bi   *debug.BuildInfo
		want Info
	}{
		"no build info": {
			want: Info{Version: "devel"},
		},
		"devel": {
			bi:   &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}},
			want: Info{Version: "devel"},
		},
		"release with vcs": {
			bi: &debug.BuildInfo{
				Main: debug.Module{Version: "v1.2.3"},
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "abc123"},
					{Key: "vcs.time", Value: "2025-01-02T03:04:05Z"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			want: Info{
				Version: "v1.2.3",
				Commit:  "abc123",
				BuiltAt: "2025-01-02T03:04:05Z",
				Dirty:   true,
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := loadInfo(func() (*debug.BuildInfo, bool) { return tc.bi, tc.bi != nil })
			tc.want.Go = runtime.Version()
			tc.want.OS = runtime.GOOS
			tc.want.Arch = runtime.GOARCH
			testutil.AssertEqual(t, got, tc.want)
		})
	}
}

func TestInfoString(t *testing.T) {
	t.Parallel()

	s := Info{
		Version: "v1.2.3",
		Commit:  "abc123",
		Dirty:   true,
		BuiltAt: "2025-01-02T03:04:05Z",
		Go:      "go1.24.2",
		OS:      "linux",
		Arch:    "amd64",
	}.String()

	want := " v1.2.3 (go1.24.2, linux/amd64)\ncommit abc123 (dirty)\nbuilt at 2025-01-02T03:04:05Z\n"
	if !strings.HasSuffix(s, want) {
		t.Fatalf("got %q, want suffix %q", s, want)
	}
}
