package gallery_test

import (
	"context"
	"encoding/json"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lojasmm/inlinekb/form"
	"github.com/lojasmm/inlinekb/internal/gallery"
	"github.com/lojasmm/inlinekb/keyboard"
	"github.com/lojasmm/inlinekb/router"
	"github.com/lojasmm/inlinekb/widget"
)

func TestGallery(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Gallery Suite")
}

type sent struct {
	texts []string
}

func (s *sent) SendText(_ context.Context, _ int64, text string) error {
	s.texts = append(s.texts, text)
	return nil
}

var _ = Describe("Gallery", func() {
	styles := widget.DefaultStyles()

	It("should render every kind as a rectangle", func() {
		for _, k := range gallery.Kinds() {
			kb := form.Keyboard(k.New(), styles)
			Expect(kb).NotTo(BeEmpty(), k.Name)
			Expect(kb.Rectangular()).To(BeTrue(), k.Name)
		}
	})

	It("should look kinds up by name", func() {
		k, ok := gallery.Lookup("complex")
		Expect(ok).To(BeTrue())
		Expect(k.Title).NotTo(BeEmpty())
		_, ok = gallery.Lookup("slider")
		Expect(ok).To(BeFalse())
	})

	It("should lay the complex form out as 4x3", func() {
		kb := form.Keyboard(gallery.NewComplexForm(), styles)
		Expect(kb.Size()).To(Equal(keyboard.NewSize(4, 3)))
		Expect(kb[0][2].Token).To(Equal("done"))
		Expect(kb[1][2].IsPlaceholder()).To(BeTrue())
	})

	It("should restore a stored form", func() {
		f := gallery.NewComplexForm()
		f.Shapes.SetActive(2)
		f.Options.Toggle(0)
		data, err := json.Marshal(f)
		Expect(err).NotTo(HaveOccurred())

		k, _ := gallery.Lookup("complex")
		restored := k.New()
		Expect(json.Unmarshal(data, restored)).To(Succeed())
		Expect(restored.(*gallery.ComplexForm).Summary()).To(Equal("You chose circle with options A."))
	})

	It("should reply from button handlers", func() {
		n := &sent{}
		f := gallery.NewComplexForm()
		f.Bind(n)

		out, err := form.Router(f).Dispatch(context.Background(), router.Callback{ChatID: 1, Data: "done"})
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal(router.Handled))
		Expect(n.texts).To(Equal([]string{"You chose no shape without options."}))
	})
})
