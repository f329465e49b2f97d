package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/JTPenguin/inline-roll-macro-sub000/engine"
	"github.com/JTPenguin/inline-roll-macro-sub000/engine/report"
)

func testResolve(name string) (string, bool) {
	if name == "frightened" {
		return "Compendium.pf2e.conditionitems.Item.TBSHQSfT1bj2AJTU", true
	}
	return "", false
}

func newTestCLI(in string) (*CLI, *bytes.Buffer, *bytes.Buffer) {
	var out, errBuf bytes.Buffer
	c := &CLI{
		Conv: engine.New(testResolve),
		In:   strings.NewReader(in),
		Out:  &out,
		Err:  &errBuf,
	}
	return c, &out, &errBuf
}

func TestRun(t *testing.T) {
	c, out, _ := newTestCLI("Attempt a DC 25 Reflex save.\n")
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := "Attempt a @Check[reflex|dc:25] save.\n"
	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestRun_AddsTrailingNewline(t *testing.T) {
	c, out, _ := newTestCLI("Take 8d6 fire damage")
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := out.String()
	if !strings.HasSuffix(got, "damage\n") {
		t.Errorf("output = %q, want a single trailing newline", got)
	}
	if strings.HasSuffix(got, "\n\n") {
		t.Errorf("output = %q, newline was doubled", got)
	}
}

func TestRun_DedupSpansWholeStream(t *testing.T) {
	c, out, _ := newTestCLI("You are frightened 1.\nStill frightened 1.\n")
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	got := out.String()
	if n := strings.Count(got, "@UUID["); n != 1 {
		t.Errorf("got %d links, want 1; output: %q", n, got)
	}
}

func TestRun_Trace(t *testing.T) {
	c, _, errBuf := newTestCLI("Take 8d6 fire damage.\n")
	c.Trace = true
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	findings, err := report.Unmarshal(bytes.TrimSpace(errBuf.Bytes()))
	if err != nil {
		t.Fatalf("trace output is not valid JSON: %v\n%s", err, errBuf.String())
	}
	if len(findings) != 1 {
		t.Fatalf("got %d findings, want 1", len(findings))
	}
	if findings[0].Type != "damage" || !findings[0].Valid {
		t.Errorf("finding = %+v", findings[0])
	}
}

func TestRun_NoTraceByDefault(t *testing.T) {
	c, _, errBuf := newTestCLI("Take 8d6 fire damage.\n")
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if errBuf.Len() != 0 {
		t.Errorf("stderr not empty without --trace: %q", errBuf.String())
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("read failed")
}

func TestRun_ReadError(t *testing.T) {
	var out bytes.Buffer
	c := &CLI{Conv: engine.New(nil), In: failingReader{}, Out: &out, Err: &out}
	if err := c.Run(); err == nil {
		t.Error("expected an error from a failing reader")
	}
}
