package tests

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

// TestFunctional builds the mirc binary and runs every testdata/*.txtar
// fixture through it with -dbg-mir-print, comparing the MIR dump section
// against the "expected.mir" file embedded in the archive. Grounded on the
// teacher's build-then-exec-then-diff functional test harness, adapted from
// comparing whole-process stdout/stderr against a flat .want file to
// comparing one archived section against the compiler's MIR dump.
func TestFunctional(t *testing.T) {
	projectRoot, err := filepath.Abs("..")
	if err != nil {
		t.Fatalf("failed to get project root: %v", err)
	}

	binaryPath := filepath.Join(projectRoot, "mirc-test-binary")
	defer os.Remove(binaryPath)

	t.Log("building fresh binary...")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/mirc")
	cmd.Dir = projectRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build binary: %v\n%s", err, output)
	}

	archives, err := filepath.Glob(filepath.Join(projectRoot, "testdata", "*.txtar"))
	if err != nil {
		t.Fatalf("failed to glob testdata: %v", err)
	}
	if len(archives) == 0 {
		t.Skip("no testdata/*.txtar fixtures found")
	}

	for _, archivePath := range archives {
		archivePath := archivePath
		name := strings.TrimSuffix(filepath.Base(archivePath), ".txtar")

		t.Run(name, func(t *testing.T) {
			ar, err := txtar.ParseFile(archivePath)
			if err != nil {
				t.Fatalf("parsing archive: %v", err)
			}

			var input, expectedMIR []byte
			for _, f := range ar.Files {
				switch f.Name {
				case "input.src":
					input = f.Data
				case "expected.mir":
					expectedMIR = f.Data
				}
			}
			if input == nil {
				t.Fatalf("archive missing input.src section")
			}

			srcPath := filepath.Join(t.TempDir(), name+".mirc")
			if err := os.WriteFile(srcPath, input, 0o644); err != nil {
				t.Fatalf("writing source fixture: %v", err)
			}

			cmd := exec.Command(binaryPath, "-dbg-mir-print", srcPath)
			var stdout, stderr bytes.Buffer
			cmd.Stdout = &stdout
			cmd.Stderr = &stderr
			_ = cmd.Run()

			if expectedMIR == nil {
				// A fixture with no expected.mir section only asserts the
				// compiler runs without a compiler-internal failure.
				if strings.Contains(stderr.String(), "Compiler Error") {
					t.Fatalf("unexpected compiler-internal diagnostic:\n%s", stderr.String())
				}
				return
			}

			got := extractDump(stdout.String(), "--- MIR Dump ---", "-------")
			want := strings.TrimSpace(string(expectedMIR))
			if strings.TrimSpace(got) != want {
				t.Errorf("MIR dump mismatch:\n--- want ---\n%s\n--- got ---\n%s", want, got)
			}
		})
	}
}

// extractDump returns the text between a banner pair, trimmed, the format
// cmd/mirc wraps its -dbg-ast-print/-dbg-mir-print output in.
func extractDump(output, startBanner, endBanner string) string {
	start := strings.Index(output, startBanner)
	if start < 0 {
		return ""
	}
	start += len(startBanner)
	rest := output[start:]
	end := strings.Index(rest, endBanner)
	if end < 0 {
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(rest[:end])
}
