package section

import "github.com/nickspiker/vsf-sub001/numcodec"

func decodeVarUint(data []byte) (uint64, int, error) {
	return numcodec.DecodeUint(data)
}

func decodePreambleSize(data []byte) (uint64, int, error) {
	return numcodec.DecodeUint(data)
}
