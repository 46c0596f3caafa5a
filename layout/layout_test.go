package layout_test

import (
	"fmt"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lojasmm/inlinekb/keyboard"
	"github.com/lojasmm/inlinekb/layout"
)

func TestLayout(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Layout Suite")
}

var noop = keyboard.Placeholder("✖️")

// entry builds a keyboard whose cells are labelled "<name><row><col>".
func entry(name string, rows, columns uint8) layout.Entry {
	kb := make(keyboard.Keyboard, rows)
	for r := range kb {
		kb[r] = make([]keyboard.Cell, columns)
		for c := range kb[r] {
			label := fmt.Sprintf("%s%d%d", name, r, c)
			kb[r][c] = keyboard.Cell{Label: label, Token: label}
		}
	}
	return layout.Entry{Keyboard: kb, Size: keyboard.NewSize(rows, columns)}
}

var _ = Describe("Layout", func() {
	DescribeTable("TotalSize",
		func(sizes [][2]uint8, orientation layout.Orientation, expected keyboard.Size) {
			entries := make([]layout.Entry, len(sizes))
			for i, s := range sizes {
				entries[i] = entry("e", s[0], s[1])
			}
			Expect(layout.TotalSize(entries, orientation)).To(Equal(expected))
			Expect(layout.TotalSize(entries, orientation)).To(Equal(expected), "pure function")
			Expect(layout.Compose(entries, orientation, noop).Fits(expected)).To(BeTrue())
		},
		Entry("two 2x2 horizontally", [][2]uint8{{2, 2}, {2, 2}}, layout.Horizontal, keyboard.NewSize(2, 4)),
		Entry("1x3 and 4x2 horizontally", [][2]uint8{{1, 3}, {4, 2}}, layout.Horizontal, keyboard.NewSize(4, 5)),
		Entry("two 2x2 vertically", [][2]uint8{{2, 2}, {2, 2}}, layout.Vertical, keyboard.NewSize(4, 2)),
		Entry("1x3 and 4x2 vertically", [][2]uint8{{1, 3}, {4, 2}}, layout.Vertical, keyboard.NewSize(5, 3)),
		Entry("three entries horizontally", [][2]uint8{{3, 1}, {1, 1}, {2, 4}}, layout.Horizontal, keyboard.NewSize(3, 6)),
		Entry("three entries vertically", [][2]uint8{{3, 1}, {1, 1}, {2, 4}}, layout.Vertical, keyboard.NewSize(6, 4)),
		Entry("single entry", [][2]uint8{{3, 3}}, layout.Vertical, keyboard.NewSize(3, 3)),
		Entry("no entries horizontally", [][2]uint8{}, layout.Horizontal, keyboard.Size{}),
		Entry("no entries vertically", [][2]uint8{}, layout.Vertical, keyboard.Size{}),
	)

	Describe("Compose", func() {
		It("should place two 2x2 entries side by side", func() {
			a, b := entry("a", 2, 2), entry("b", 2, 2)
			kb := layout.Compose([]layout.Entry{a, b}, layout.Horizontal, noop)

			Expect(kb.Size()).To(Equal(keyboard.NewSize(2, 4)))
			for r := 0; r < 2; r++ {
				for c := 0; c < 2; c++ {
					Expect(kb[r][c]).To(Equal(a.Keyboard[r][c]))
					Expect(kb[r][c+2]).To(Equal(b.Keyboard[r][c]))
				}
			}
		})

		It("should pad a shorter entry with placeholders", func() {
			a, b := entry("a", 1, 3), entry("b", 4, 2)
			kb := layout.Compose([]layout.Entry{a, b}, layout.Horizontal, noop)

			Expect(kb.Fits(keyboard.NewSize(4, 5))).To(BeTrue())
			for c := 0; c < 3; c++ {
				Expect(kb[0][c]).To(Equal(a.Keyboard[0][c]))
				for r := 1; r < 4; r++ {
					Expect(kb[r][c]).To(Equal(noop))
				}
			}
			for r := 0; r < 4; r++ {
				for c := 0; c < 2; c++ {
					Expect(kb[r][c+3]).To(Equal(b.Keyboard[r][c]))
				}
			}
		})

		It("should stack entries vertically", func() {
			a, b := entry("a", 2, 2), entry("b", 2, 2)
			kb := layout.Compose([]layout.Entry{a, b}, layout.Vertical, noop)

			Expect(kb.Fits(keyboard.NewSize(4, 2))).To(BeTrue())
			for r := 0; r < 2; r++ {
				Expect(kb[r]).To(Equal(a.Keyboard[r]))
				Expect(kb[r+2]).To(Equal(b.Keyboard[r]))
			}
		})

		It("should pad narrower entries on the right when stacking", func() {
			a, b := entry("a", 1, 1), entry("b", 1, 3)
			kb := layout.Compose([]layout.Entry{a, b}, layout.Vertical, noop)

			Expect(kb).To(Equal(keyboard.Keyboard{
				{a.Keyboard[0][0], noop, noop},
				b.Keyboard[0],
			}))
		})

		It("should return a single entry unchanged", func() {
			a := entry("a", 3, 3)
			kb := layout.Compose([]layout.Entry{a}, layout.Horizontal, noop)

			Expect(kb).To(Equal(a.Keyboard))
			for _, row := range kb {
				for _, c := range row {
					Expect(c.IsPlaceholder()).To(BeFalse())
				}
			}
		})

		It("should not alias the input keyboards", func() {
			a := entry("a", 1, 1)
			kb := layout.Compose([]layout.Entry{a}, layout.Horizontal, noop)
			kb[0][0] = noop
			Expect(a.Keyboard[0][0].IsPlaceholder()).To(BeFalse())
		})

		It("should return zero rows for no entries", func() {
			kb := layout.Compose(nil, layout.Horizontal, noop)
			Expect(kb).NotTo(BeNil())
			Expect(kb).To(BeEmpty())
		})

		It("should accept zero-sized entries", func() {
			a, b := layout.Entry{Keyboard: keyboard.Keyboard{}}, entry("b", 1, 2)
			kb := layout.Compose([]layout.Entry{a, b}, layout.Horizontal, noop)
			Expect(kb).To(Equal(b.Keyboard))
		})

		It("should fill every uncovered cell with the placeholder", func() {
			entries := []layout.Entry{entry("a", 2, 1), entry("b", 5, 2), entry("c", 1, 1)}
			kb := layout.Compose(entries, layout.Horizontal, noop)

			covered := 0
			for _, row := range kb {
				for _, c := range row {
					if !c.IsPlaceholder() {
						covered++
					}
				}
			}
			Expect(covered).To(Equal(2 + 10 + 1))
			Expect(kb.Size().Cells() - covered).To(Equal(5*4 - 13))
			Expect(kb[4][0]).To(Equal(noop))
			Expect(kb[1][3]).To(Equal(noop))
		})

		Context("when a producer reports the wrong size", func() {
			It("should panic with a contract error on too many rows", func() {
				bad := entry("a", 3, 2)
				bad.Size = keyboard.NewSize(2, 2)
				Expect(func() {
					layout.Compose([]layout.Entry{entry("b", 2, 2), bad}, layout.Horizontal, noop)
				}).To(PanicWith(BeAssignableToTypeOf(&layout.ContractError{})))
			})

			It("should panic on a ragged keyboard", func() {
				bad := entry("a", 2, 2)
				bad.Keyboard[1] = bad.Keyboard[1][:1]
				Expect(func() {
					layout.Compose([]layout.Entry{bad}, layout.Vertical, noop)
				}).To(PanicWith(SatisfyAll(
					BeAssignableToTypeOf(&layout.ContractError{}),
					WithTransform(func(e *layout.ContractError) int { return e.Index }, Equal(0)),
				)))
			})

			It("should panic when the keyboard is smaller than declared", func() {
				bad := entry("a", 1, 1)
				bad.Size = keyboard.NewSize(1, 3)
				Expect(func() {
					layout.Compose([]layout.Entry{bad}, layout.Horizontal, noop)
				}).To(Panic())
			})
		})
	})

	Describe("Layout", func() {
		It("should compose added entries", func() {
			a, b := entry("a", 1, 1), entry("b", 1, 1)
			l := layout.New(layout.Vertical, noop).Add(a.Keyboard, a.Size).Add(b.Keyboard, b.Size)

			Expect(l.Size()).To(Equal(keyboard.NewSize(2, 1)))
			Expect(l.Keyboard()).To(Equal(keyboard.Keyboard{a.Keyboard[0], b.Keyboard[0]}))
		})

		It("should name orientations", func() {
			Expect(layout.Horizontal.String()).To(Equal("horizontal"))
			Expect(layout.Vertical.String()).To(Equal("vertical"))
		})
	})
})
