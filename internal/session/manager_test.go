package session_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lojasmm/inlinekb/internal/session"
)

func TestSession(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Session Suite")
}

var _ = Describe("Manager", func() {
	It("should serialize work of the same chat", func() {
		m := session.NewManager()
		var running, maxRunning int32
		var wg sync.WaitGroup

		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = m.WithLock(1, func() error {
					n := atomic.AddInt32(&running, 1)
					for {
						old := atomic.LoadInt32(&maxRunning)
						if n <= old || atomic.CompareAndSwapInt32(&maxRunning, old, n) {
							break
						}
					}
					time.Sleep(time.Millisecond)
					atomic.AddInt32(&running, -1)
					return nil
				})
			}()
		}
		wg.Wait()

		Expect(atomic.LoadInt32(&maxRunning)).To(Equal(int32(1)))
	})

	It("should return the callback error", func() {
		m := session.NewManager()
		err := m.WithLock(3, func() error { return errTest })
		Expect(err).To(MatchError(errTest))
	})

	It("should drop idle locks", func() {
		m := session.NewManager()
		Expect(m.WithLock(1, func() error { return nil })).To(Succeed())
		Expect(m.WithLock(2, func() error { return nil })).To(Succeed())
		Expect(m.Len()).To(Equal(2))

		Expect(m.Cleanup(time.Hour)).To(BeZero())
		time.Sleep(5 * time.Millisecond)
		Expect(m.Cleanup(time.Millisecond)).To(Equal(2))
		Expect(m.Len()).To(BeZero())
	})
})

type testError string

func (e testError) Error() string { return string(e) }

const errTest = testError("boom")
