package preview_test

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lojasmm/inlinekb/keyboard"
	"github.com/lojasmm/inlinekb/preview"
)

func TestPreview(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Preview Suite")
}

var _ = Describe("Render", func() {
	kb := keyboard.Keyboard{
		{{Label: "square", Token: "s_0"}, {Label: "A", Token: "o_0"}},
		{{Label: "circle", Token: "s_1"}, keyboard.Placeholder("x")},
	}

	It("should draw three lines per keyboard row", func() {
		out := preview.Render(kb)
		Expect(lipgloss.Height(out)).To(Equal(6))
		Expect(out).To(ContainSubstring("square"))
		Expect(out).To(ContainSubstring("circle"))
	})

	It("should give every row the same width", func() {
		lines := strings.Split(preview.Render(kb), "\n")
		for _, l := range lines[1:] {
			Expect(lipgloss.Width(l)).To(Equal(lipgloss.Width(lines[0])))
		}
	})

	It("should note empty keyboards", func() {
		Expect(preview.Render(nil)).To(ContainSubstring("empty keyboard"))
	})

	It("should title with the size", func() {
		out := preview.Titled("Shapes", kb)
		Expect(out).To(ContainSubstring("Shapes"))
		Expect(out).To(ContainSubstring("2x2"))
	})

	It("should list tokens in row-major order", func() {
		out := preview.Tokens(kb)
		Expect(strings.Index(out, "s_0")).To(BeNumerically("<", strings.Index(out, "o_0")))
		Expect(out).To(ContainSubstring(keyboard.NoopToken))
	})
})
