package posix

import "io"

// readAlphabet fills dst with characters of alphabet picked uniformly from
// the bytes of r. Bytes at or above the largest multiple of len(alphabet)
// that fits a byte are discarded and redrawn.
func readAlphabet(r io.Reader, dst []byte, alphabet string) error {
	limit := 256 - 256%len(alphabet)

	var raw [64]byte
	for i := 0; i < len(dst); {
		chunk := raw[:min(len(dst)-i, len(raw))]
		if _, err := io.ReadFull(r, chunk); err != nil {
			return err //nolint:wrapcheck
		}

		for _, b := range chunk {
			if int(b) >= limit {
				continue
			}
			dst[i] = alphabet[int(b)%len(alphabet)]
			i++
		}
	}

	return nil
}
