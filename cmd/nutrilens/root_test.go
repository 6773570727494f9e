package nutrilens

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootHelp(t *testing.T) {
	out, err := runCommand(t, "--help")
	if err != nil {
		t.Fatalf("execute root help: %v", err)
	}
	if out == "" {
		t.Fatalf("expected help output")
	}
}

func TestWaterAddAndRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nutrilens.db")

	out, err := runCommand(t, "--db", path, "water", "add", "3")
	if err != nil {
		t.Fatalf("water add: %v", err)
	}
	if !strings.Contains(out, "Water today: 3 glasses") {
		t.Fatalf("expected 3 glasses after add, got %q", out)
	}

	out, err = runCommand(t, "--db", path, "water", "remove", "1")
	if err != nil {
		t.Fatalf("water remove: %v", err)
	}
	if !strings.Contains(out, "Water today: 2 glasses") {
		t.Fatalf("expected 2 glasses after remove, got %q", out)
	}
}

func TestWaterRemoveNeverGoesNegative(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nutrilens.db")

	out, err := runCommand(t, "--db", path, "water", "remove", "100")
	if err != nil {
		t.Fatalf("water remove: %v", err)
	}
	if !strings.Contains(out, "Water today: 0 glasses") {
		t.Fatalf("expected water floored at 0, got %q", out)
	}
}

func TestWaterDefaultsToOneGlass(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nutrilens.db")

	out, err := runCommand(t, "--db", path, "water", "add")
	if err != nil {
		t.Fatalf("water add: %v", err)
	}
	if !strings.Contains(out, "Water today: 1 glasses") {
		t.Fatalf("expected 1 glass after bare add, got %q", out)
	}
}

func TestWaterRejectsInvalidCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nutrilens.db")

	if _, err := runCommand(t, "--db", path, "water", "add", "zero"); err == nil {
		t.Fatal("expected error for non-numeric glasses count")
	}
	if _, err := runCommand(t, "--db", path, "water", "remove", "-2"); err == nil {
		t.Fatal("expected error for negative glasses count")
	}
}

func TestLogTextRejectsEmptyDescription(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nutrilens.db")

	_, err := runCommand(t, "--db", path, "log", "text", "   ")
	if err == nil {
		t.Fatal("expected error for blank meal description")
	}
	if !strings.Contains(err.Error(), "meal description is required") {
		t.Fatalf("expected description validation error, got %v", err)
	}
}

func TestGoalsUpdateUsesDefaultBiometrics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nutrilens.db")

	out, err := runCommand(t, "--db", path, "goals", "update")
	if err != nil {
		t.Fatalf("goals update: %v", err)
	}
	if !strings.Contains(out, "Calories: 2507 kcal") {
		t.Fatalf("expected calculated calories in output, got %q", out)
	}

	out, err = runCommand(t, "--db", path, "goals", "show")
	if err != nil {
		t.Fatalf("goals show: %v", err)
	}
	if !strings.Contains(out, "Calories: 2507 kcal") {
		t.Fatalf("expected persisted goals shown, got %q", out)
	}
}

func TestBiometricsSetThenShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nutrilens.db")

	out, err := runCommand(t, "--db", path, "biometrics", "set", "--weight", "82", "--gender", "female")
	if err != nil {
		t.Fatalf("biometrics set: %v", err)
	}
	if !strings.Contains(out, "Weight: 82.0 kg") || !strings.Contains(out, "Gender: FEMALE") {
		t.Fatalf("expected updated biometrics echoed, got %q", out)
	}

	out, err = runCommand(t, "--db", path, "biometrics", "show")
	if err != nil {
		t.Fatalf("biometrics show: %v", err)
	}
	if !strings.Contains(out, "Weight: 82.0 kg") {
		t.Fatalf("expected stored biometrics shown, got %q", out)
	}
}
