// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package importexpand

import (
	"errors"
	"testing"

	"github.com/philocalyst/anki/cerrs"
)

// mapReader resolves relative paths by plain string concatenation and reads
// from an in-memory map. It is deliberately simpler than any real VCS-backed
// reader, since Expand never inspects canonical keys beyond equality.
type mapReader map[string]string

func (m mapReader) Resolve(fromCanonical, relPath string) (string, error) {
	return relPath, nil
}

func (m mapReader) Read(canonical string) (string, error) {
	text, ok := m[canonical]
	if !ok {
		return "", errors.New("no such file: " + canonical)
	}
	return text, nil
}

func TestExpand(t *testing.T) {
	for _, tc := range []struct {
		id      string
		files   mapReader
		root    string
		want    string
		wantErr error
	}{
		{
			id:    "no imports is identity",
			files: mapReader{"a.flash": "= Basic =\nFront: hello\n"},
			root:  "a.flash",
			want:  "= Basic =\nFront: hello\n",
		},
		{
			id: "single import is inlined",
			files: mapReader{
				"a.flash": "import b.flash\nFront: after\n",
				"b.flash": "Front: imported\n",
			},
			root: "a.flash",
			want: "Front: imported\nFront: after\n",
		},
		{
			id: "import with no trailing newline still separates from following text",
			files: mapReader{
				"a.flash": "import b.flash\nFront: after\n",
				"b.flash": "Front: imported",
			},
			root: "a.flash",
			want: "Front: imported\nFront: after\n",
		},
		{
			id: "nested imports expand depth-first left-to-right",
			files: mapReader{
				"a.flash": "import b.flash\nimport c.flash\n",
				"b.flash": "import d.flash\n",
				"c.flash": "from c\n",
				"d.flash": "from d\n",
			},
			root: "a.flash",
			want: "from d\nfrom c\n",
		},
		{
			id: "self import is a cycle",
			files: mapReader{
				"a.flash": "import a.flash\n",
			},
			root:    "a.flash",
			wantErr: &cerrs.CircularImportError{Path: "a.flash"},
		},
		{
			id: "mutual import is a cycle",
			files: mapReader{
				"a.flash": "import b.flash\n",
				"b.flash": "import a.flash\n",
			},
			root:    "a.flash",
			wantErr: &cerrs.CircularImportError{Path: "a.flash"},
		},
		{
			id: "unreadable import fails",
			files: mapReader{
				"a.flash": "import missing.flash\n",
			},
			root:    "a.flash",
			wantErr: &cerrs.ImportUnreadableError{Path: "missing.flash"},
		},
		{
			id:    "a line merely containing the word import is not a directive",
			files: mapReader{"a.flash": "Front: you can import things here\n"},
			root:  "a.flash",
			want:  "Front: you can import things here\n",
		},
	} {
		got, err := Expand(tc.files, tc.root, tc.files[tc.root])
		if tc.wantErr != nil {
			if err == nil {
				t.Errorf("id %q: got nil error, want %v", tc.id, tc.wantErr)
				continue
			}
			switch want := tc.wantErr.(type) {
			case *cerrs.CircularImportError:
				var got *cerrs.CircularImportError
				if !errors.As(err, &got) || got.Path != want.Path {
					t.Errorf("id %q: got error %v, want CircularImportError(%s)", tc.id, err, want.Path)
				}
			case *cerrs.ImportUnreadableError:
				var got *cerrs.ImportUnreadableError
				if !errors.As(err, &got) || got.Path != want.Path {
					t.Errorf("id %q: got error %v, want ImportUnreadableError(%s)", tc.id, err, want.Path)
				}
			}
			continue
		}
		if err != nil {
			t.Errorf("id %q: unexpected error: %v", tc.id, err)
			continue
		}
		if got != tc.want {
			t.Errorf("id %q: got %q, want %q", tc.id, got, tc.want)
		}
	}
}
