package predictor_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/bpsim/predictor"
)

var _ = Describe("HistoryRegister", func() {
	It("should start empty", func() {
		h := predictor.NewHistoryRegister(11)
		Expect(h.Value()).To(Equal(uint32(0)))
		Expect(h.Width()).To(Equal(uint(11)))
	})

	It("should shift the newest outcome into bit 0", func() {
		h := predictor.NewHistoryRegister(11)
		h.Shift(true)
		h.Shift(false)
		h.Shift(true)

		Expect(h.Masked(predictor.MaskForWidth(3))).To(Equal(uint32(0b101)))
	})

	It("should keep only its own width", func() {
		h := predictor.NewHistoryRegister(11)
		for i := 0; i < 20; i++ {
			h.Shift(true)
		}
		Expect(h.Value()).To(Equal(uint32(0x7FF)))

		h.Shift(false)
		Expect(h.Value()).To(Equal(uint32(0x7FE)))
	})

	It("should clear on reset", func() {
		h := predictor.NewHistoryRegister(4)
		h.Shift(true)
		h.Reset()
		Expect(h.Value()).To(Equal(uint32(0)))
	})

	It("should support a full 32-bit register", func() {
		h := predictor.NewHistoryRegister(40)
		Expect(h.Width()).To(Equal(uint(predictor.MaxHistoryWidth)))
		for i := 0; i < 40; i++ {
			h.Shift(true)
		}
		Expect(h.Value()).To(Equal(uint32(0xFFFFFFFF)))
	})

	It("should build masks from widths", func() {
		Expect(predictor.MaskForWidth(3)).To(Equal(uint32(0x7)))
		Expect(predictor.MaskForWidth(11)).To(Equal(uint32(0x7FF)))
		Expect(predictor.MaskForWidth(32)).To(Equal(uint32(0xFFFFFFFF)))
	})
})
