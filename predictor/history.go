package predictor

// MaxHistoryWidth is the widest history register supported.
const MaxHistoryWidth = 32

// HistoryRegister is a fixed-width global branch history. The most recent
// outcome is bit 0.
type HistoryRegister struct {
	bits  uint32
	width uint
}

// NewHistoryRegister creates an all-zero register holding width outcomes.
// Widths above MaxHistoryWidth are clamped.
func NewHistoryRegister(width uint) HistoryRegister {
	return HistoryRegister{width: min(width, MaxHistoryWidth)}
}

// Width returns the number of outcomes the register keeps.
func (h HistoryRegister) Width() uint {
	return h.width
}

// Value returns the register contents.
func (h HistoryRegister) Value() uint32 {
	return h.bits
}

// Masked returns the low bits of the register selected by mask.
func (h HistoryRegister) Masked(mask uint32) uint32 {
	return h.bits & mask
}

// Shift records an outcome and drops the oldest one.
func (h *HistoryRegister) Shift(taken bool) {
	next := uint64(h.bits) << 1
	if taken {
		next |= 1
	}
	h.bits = uint32(next & widthMask(h.width))
}

// Reset clears all recorded outcomes.
func (h *HistoryRegister) Reset() {
	h.bits = 0
}

// MaskForWidth returns 2^w-1 for w up to MaxHistoryWidth.
func MaskForWidth(w uint) uint32 {
	return uint32(widthMask(min(w, MaxHistoryWidth)))
}

func widthMask(w uint) uint64 {
	return (uint64(1) << w) - 1
}
