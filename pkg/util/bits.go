package util

const wordBits = 32

func checkBitRange(start, length int) error {
	if start < 0 || start >= wordBits || length <= 0 || start+length > wordBits {
		return WrapErrorf(nil, ErrInvalidArgument, "invalid bit range: start=%d length=%d", start, length)
	}
	return nil
}

// ExtractSigned. extract the length-bit field starting at bit start of value, sign extended (two's complement).
func ExtractSigned(value int32, start, length int) (int32, error) {
	if err := checkBitRange(start, length); err != nil {
		return 0, err
	}
	end := start + length
	return (value << (wordBits - end)) >> (wordBits - length), nil
}

// ExtractUnsigned. extract the length-bit field starting at bit start of value, zero extended.
func ExtractUnsigned(value int32, start, length int) (int32, error) {
	if err := checkBitRange(start, length); err != nil {
		return 0, err
	}
	if length == wordBits {
		return 0, WrapErrorf(nil, ErrInvalidArgument, "unsigned field cannot span %d bits", wordBits)
	}
	end := start + length
	return int32((uint32(value) << (wordBits - end)) >> (wordBits - length)), nil
}

// extractSignedUnchecked and extractUnsignedUnchecked back the fixed-layout decoders, whose ranges are constants.
func extractSignedUnchecked(value int32, start, length int) int32 {
	end := start + length
	return (value << (wordBits - end)) >> (wordBits - length)
}

func extractUnsignedUnchecked(value int32, start, length int) int32 {
	end := start + length
	return int32((uint32(value) << (wordBits - end)) >> (wordBits - length))
}

// MustExtractSigned panics on an invalid range. use only with constant ranges.
func MustExtractSigned(value int32, start, length int) int32 {
	if checkBitRange(start, length) != nil {
		panic("util: invalid signed bit range")
	}
	return extractSignedUnchecked(value, start, length)
}

// MustExtractUnsigned panics on an invalid range. use only with constant ranges.
func MustExtractUnsigned(value int32, start, length int) int32 {
	if checkBitRange(start, length) != nil || length == wordBits {
		panic("util: invalid unsigned bit range")
	}
	return extractUnsignedUnchecked(value, start, length)
}
