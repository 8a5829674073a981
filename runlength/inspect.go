package runlength

// BlockInfo describes a run-length block
type BlockInfo struct {
	Selector      uint16
	Runs          bool
	PayloadLength int
	PairCount     int
	DecodedLength int
}

// Inspect validates a block and reports its layout without expanding it
func Inspect(block []byte) (*BlockInfo, error) {
	selector, payload, err := split(block)
	if err != nil {
		return nil, err
	}

	info := &BlockInfo{
		Selector:      selector,
		PayloadLength: len(payload),
		DecodedLength: len(payload),
	}

	if selector == SelectorRaw {
		return info, nil
	}

	total, err := decodedLength(payload)
	if err != nil {
		return nil, err
	}

	info.Runs = true
	info.PairCount = len(payload) / 2
	info.DecodedLength = total

	return info, nil
}
