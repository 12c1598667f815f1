package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestSamplePipelineInputBuildsAWellFormedFunction(t *testing.T) {
	fn := samplePipelineInput()
	if fn == nil {
		t.Fatal("samplePipelineInput() returned nil")
	}
	if got := fn.String(); !strings.Contains(got, "1 + 2") && !strings.Contains(got, "+") {
		t.Errorf("String() = %q, want it to mention the sample sum", got)
	}
}

func TestDumpIRCmdPrintsTheSampleTree(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"dump-ir"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(buf.String(), "function") {
		t.Errorf("dump-ir output = %q, want the sample function", buf.String())
	}
}

func TestTypeMapCmdRunsThePipelineToCompletion(t *testing.T) {
	rootCmd.SetArgs([]string{"type-map"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
}

func TestCacheStatsCmdRequiresExactlyOneArg(t *testing.T) {
	rootCmd.SetArgs([]string{"cache-stats"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("expected an error when cache-stats is run without a directory argument")
	}
}

func TestCacheStatsCmdReportsOnADirectory(t *testing.T) {
	dir := t.TempDir()
	rootCmd.SetArgs([]string{"cache-stats", dir})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
}
