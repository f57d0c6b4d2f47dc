package report

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestRunnerCounts(t *testing.T) {
	var r Runner

	r.Checkf("a", true, "")
	r.Checkf("b", false, "broke: %d", 7)
	r.Equal("c", "x", "x")
	r.Near("d", 1.0, 1.05, 0.1)

	s := r.Summary()

	if s.Total != 4 || s.Passed != 3 || s.Failed != 1 {
		t.Fatalf("summary = %d/%d/%d, want 4/3/1", s.Total, s.Passed, s.Failed)
	}

	if len(s.Failures) != 1 || s.Failures[0].Name != "b" {
		t.Fatalf("failures = %+v, want single check b", s.Failures)
	}

	if s.Failures[0].Detail != "broke: 7" {
		t.Fatalf("detail = %q", s.Failures[0].Detail)
	}

	if s.OK() {
		t.Fatal("OK with a failing check")
	}
}

func TestSuccessRate(t *testing.T) {
	var r Runner

	r.Checkf("a", true, "")
	r.Checkf("b", true, "")
	r.Checkf("c", false, "nope")

	rate := r.Summary().SuccessRate()
	if math.Abs(rate-200.0/3) > 1e-9 {
		t.Fatalf("SuccessRate = %v, want %v", rate, 200.0/3)
	}
}

func TestSuccessRateEmpty(t *testing.T) {
	var r Runner

	if got := r.Summary().SuccessRate(); got != 0 {
		t.Fatalf("SuccessRate of empty run = %v, want 0", got)
	}

	if !r.Summary().OK() {
		t.Fatal("empty run should be OK")
	}
}

func TestEqualMismatch(t *testing.T) {
	var r Runner

	if r.Equal("weights", 200.0, 201.0) {
		t.Fatal("Equal reported mismatched values equal")
	}

	s := r.Summary()
	if s.Failures[0].Detail != "got 200, want 201" {
		t.Fatalf("detail = %q", s.Failures[0].Detail)
	}
}

func TestNear(t *testing.T) {
	var r Runner

	if !r.Near("close", 113.4, 113.42, 0.1) {
		t.Fatal("Near failed within tolerance")
	}

	if r.Near("far", 100, 113.4, 0.1) {
		t.Fatal("Near passed outside tolerance")
	}
}

func TestSummaryIsACopy(t *testing.T) {
	var r Runner

	r.Checkf("a", true, "")

	s := r.Summary()
	s.Checks[0].Name = "mutated"

	if r.Summary().Checks[0].Name != "a" {
		t.Fatal("Summary exposed runner state")
	}
}

func TestRenderPlain(t *testing.T) {
	var r Runner

	r.Checkf("alpha", true, "")
	r.Checkf("beta", false, "got %d", 3)

	var buf bytes.Buffer
	if err := Render(&buf, r.Summary()); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	out := buf.String()

	for _, want := range []string{"PASS alpha", "FAIL beta: got 3", "2 total, 1 passed, 1 failed (50.0%)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if strings.Contains(out, "\033[") {
		t.Error("plain output contains ANSI escapes")
	}
}

func TestRenderColor(t *testing.T) {
	var r Runner

	r.Checkf("alpha", true, "")

	var buf bytes.Buffer
	if err := Render(&buf, r.Summary(), WithColor(true)); err != nil {
		t.Fatalf("Render error: %v", err)
	}

	if !strings.Contains(buf.String(), ansiGreen) {
		t.Error("colored output missing green escape")
	}
}
