package exec_test

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nocoo/skill-task-notifier/internal/exec"
)

func TestExec(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Exec Suite")
}

var _ = Describe("CommandRunner", func() {
	var runner exec.CommandRunner

	BeforeEach(func() {
		runner = exec.NewCommandRunner(5 * time.Second)
	})

	Describe("Run", func() {
		It("should execute a simple command", func() {
			result := runner.Run(context.Background(), "echo", "hello")

			Expect(result.Err).ToNot(HaveOccurred())
			Expect(result.Stdout).To(Equal("hello\n"))
			Expect(result.ExitCode).To(Equal(0))
			Expect(result.Success()).To(BeTrue())
		})

		It("should capture stderr", func() {
			result := runner.Run(context.Background(), "sh", "-c", "echo error >&2")

			Expect(result.Err).ToNot(HaveOccurred())
			Expect(result.Stderr).To(Equal("error\n"))
		})

		It("should handle command failures", func() {
			result := runner.Run(context.Background(), "sh", "-c", "exit 42")

			Expect(result.Err).To(HaveOccurred())
			Expect(result.ExitCode).To(Equal(42))
			Expect(result.Failed()).To(BeTrue())
		})

		It("should handle missing executables", func() {
			result := runner.Run(context.Background(), "nonexistent-tool-xyz")

			Expect(result.Err).To(HaveOccurred())
			Expect(result.Failed()).To(BeTrue())
		})

		It("should respect context cancellation", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			result := runner.Run(ctx, "sleep", "10")
			Expect(result.Err).To(HaveOccurred())
		})
	})

	Describe("RunWithTimeout", func() {
		It("should execute command within the timeout", func() {
			result := runner.RunWithTimeout(5*time.Second, "echo", "test")

			Expect(result.Err).ToNot(HaveOccurred())
			Expect(result.Stdout).To(Equal("test\n"))
		})

		It("should kill long-running commands", func() {
			result := runner.RunWithTimeout(100*time.Millisecond, "sleep", "10")
			Expect(result.Err).To(HaveOccurred())
		})
	})
})

var _ = Describe("ToolChecker", func() {
	var checker exec.ToolChecker

	BeforeEach(func() {
		checker = exec.NewToolChecker()
	})

	Describe("IsAvailable", func() {
		It("should return true for available tools", func() {
			Expect(checker.IsAvailable("sh")).To(BeTrue())
		})

		It("should return false for unavailable tools", func() {
			Expect(checker.IsAvailable("nonexistent-tool-xyz")).To(BeFalse())
		})
	})

	Describe("RequireTool", func() {
		It("should not error for available tools", func() {
			Expect(checker.RequireTool("sh")).To(Succeed())
		})

		It("should error for unavailable tools", func() {
			err := checker.RequireTool("nonexistent-tool-xyz")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("not found"))
		})
	})

	Describe("FindTool", func() {
		It("should return the first available tool", func() {
			Expect(checker.FindTool("nonexistent-tool", "sh", "bash")).To(Equal("sh"))
		})

		It("should return empty string if none are available", func() {
			Expect(checker.FindTool("nonexistent-tool-1", "nonexistent-tool-2")).To(BeEmpty())
		})
	})
})
