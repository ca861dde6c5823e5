package compiler

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTestdataPrograms(t *testing.T) {
	for _, dir := range []string{"valid", "invalid"} {
		files, err := filepath.Glob(filepath.Join("testdata", dir, "*.c1"))
		if err != nil {
			t.Fatal(err)
		}
		if len(files) == 0 {
			t.Fatalf("no programs in testdata/%s", dir)
		}
		for _, file := range files {
			t.Run(file, func(t *testing.T) {
				src, err := os.ReadFile(file)
				if err != nil {
					t.Fatal(err)
				}
				err = Parse(string(src))
				if dir == "valid" && err != nil {
					t.Errorf("Parse() = %v, want nil", err)
				}
				if dir == "invalid" && err == nil {
					t.Error("Parse() accepted an invalid program")
				}
			})
		}
	}
}
