package colstore

// CompressionAlgorithm 压缩算法类型
type CompressionAlgorithm = int8

const (
	// CompressionZLib zlib 压缩
	CompressionZLib CompressionAlgorithm = iota + 1

	// CompressionLZMA lzma 压缩
	CompressionLZMA

	// CompressionLZ4 lz4 压缩
	CompressionLZ4

	// CompressionZstd zstd 压缩
	CompressionZstd
)

const (
	// CompressionNone 不压缩
	CompressionNone int = 0

	// DefaultCompression 通用场景下的默认压缩配置, zstd level 5
	DefaultCompression int = int(CompressionZstd)*100 + 5
)

// CompressionSettings 把压缩算法和压缩级别打包成一个压缩配置值
// 级别会被收敛到 [0, 99] 区间, 级别为 0 表示不压缩
func CompressionSettings(algorithm CompressionAlgorithm, level int) int {
	if level < 0 {
		level = 0
	}
	if level > 99 {
		level = 99
	}
	return int(algorithm)*100 + level
}

// CompressionAlgorithmOf 从压缩配置值中取出压缩算法
func CompressionAlgorithmOf(setting int) CompressionAlgorithm {
	return CompressionAlgorithm(setting / 100)
}

// CompressionLevelOf 从压缩配置值中取出压缩级别
func CompressionLevelOf(setting int) int {
	return setting % 100
}
