package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestInlinekb(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Inlinekb Suite")
}

var _ = Describe("preview command", func() {
	run := func(args ...string) (string, error) {
		var out bytes.Buffer
		cmd := rootCmd()
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs(args)
		err := cmd.Execute()
		return out.String(), err
	}

	It("should draw every gallery form by default", func() {
		out, err := run("preview")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("Click me"))
		Expect(out).To(ContainSubstring("Choose a date:"))
		Expect(out).To(ContainSubstring("4x3"))
	})

	It("should list tokens on request", func() {
		out, err := run("preview", "radio_list", "--tokens")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("rl_0"))
		Expect(out).To(ContainSubstring("rl_1"))
		Expect(out).NotTo(ContainSubstring("Click me"))
	})

	It("should apply style overrides", func() {
		path := filepath.Join(GinkgoT().TempDir(), "styles.yaml")
		Expect(os.WriteFile(path, []byte("checkbox_list:\n  inactive_icon: \"[ ]\"\n"), 0o600)).To(Succeed())

		out, err := run("preview", "checkbox_list", "--styles", path)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("[ ] 1"))
	})

	It("should reject unknown forms", func() {
		_, err := run("preview", "slider")
		Expect(err).To(HaveOccurred())
	})
})
