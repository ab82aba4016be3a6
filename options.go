package colstore

import "github.com/pkg/errors"

const (
	// MaxSmallClusterSize 小 cluster 模式下 cluster 大小的上限
	// 按磁盘上 1 bit 一条记录的最坏情况(bool 列)计算, 32 位索引列最多可以寻址 512MB
	MaxSmallClusterSize uint64 = 512 * 1024 * 1024

	// DefaultApproxZippedClusterSize 压缩后 cluster 的默认目标大小
	DefaultApproxZippedClusterSize uint64 = 50 * 1000 * 1000

	// DefaultMaxUnzippedClusterSize 单个 cluster 未压缩数据的默认内存上限
	DefaultMaxUnzippedClusterSize uint64 = 512 * 1024 * 1024

	// DefaultApproxUnzippedPageSize 未压缩 page 的默认目标大小
	DefaultApproxUnzippedPageSize uint64 = 64 * 1024

	// DefaultMaxCageSize 默认的 cage 大小上限, 相当于 16 个默认大小的未压缩 page
	DefaultMaxCageSize uint32 = 16 * uint32(DefaultApproxUnzippedPageSize)
)

// WriteConfig 抽象写入配置接口, 存储后端需要扩展自己的配置项时, 实现这个接口即可
// 持有 WriteConfig 的一方不需要知道具体后端类型, 也能访问通用配置项和复制独立的配置副本
type WriteConfig interface {
	// Common 返回和后端无关的通用写入配置项
	Common() *WriteOptions

	// Clone 复制一份独立的配置副本, 保留具体的后端类型
	Clone() WriteConfig

	// Validate 校验配置项之间的约束, 在会话打开的时候调用
	Validate() error
}

// WriteOptions 写入时的通用配置项, 所有后端的 page sink 都需要支持
type WriteOptions struct {
	// 每个 page 写入时使用的压缩配置, 算法和级别打包在一个值里
	Compression int

	// 压缩后 cluster 的目标大小, 达到之后 cluster 会被提交
	ApproxZippedClusterSize uint64

	// 单个 cluster 未压缩数据的内存上限
	// 压缩比很高的时候, 用于限制写入缓冲区能涨到多大
	MaxUnzippedClusterSize uint64

	// 未压缩 page 的目标大小
	// cluster 的尾部 page 在这个值的 0.5 倍到 1.5 倍之间
	ApproxUnzippedPageSize uint64

	// 写入是否先经过进程内缓冲, 再统一刷到后端
	UseBufferedWrite bool

	// 开启后 64 位索引列换成 32 位, cluster 大小上限变为 MaxSmallClusterSize,
	// 对于集合很多或者压缩很弱的数据集可以得到更小的文件
	HasSmallClusters bool
}

// DefaultWriteOptions 默认写入配置
var DefaultWriteOptions = WriteOptions{
	Compression:             DefaultCompression,
	ApproxZippedClusterSize: DefaultApproxZippedClusterSize,
	MaxUnzippedClusterSize:  DefaultMaxUnzippedClusterSize,
	ApproxUnzippedPageSize:  DefaultApproxUnzippedPageSize,
	UseBufferedWrite:        true,
	HasSmallClusters:        false,
}

func (o *WriteOptions) Common() *WriteOptions {
	return o
}

// Clone 复制一份独立的写入配置
func (o *WriteOptions) Clone() WriteConfig {
	clone := *o
	return &clone
}

// Validate 校验各个大小配置之间的约束
// 配置项本身可以随意修改, 只有在会话打开的时候才会校验
func (o *WriteOptions) Validate() error {
	if o.ApproxUnzippedPageSize == 0 || o.ApproxZippedClusterSize == 0 || o.MaxUnzippedClusterSize == 0 {
		return ErrZeroSizedOption
	}
	if o.ApproxUnzippedPageSize > o.ApproxZippedClusterSize {
		return errors.Wrapf(ErrPageSizeExceedsClusterSize,
			"page size %d, zipped cluster size %d", o.ApproxUnzippedPageSize, o.ApproxZippedClusterSize)
	}
	if o.ApproxZippedClusterSize > o.MaxUnzippedClusterSize {
		return errors.Wrapf(ErrClusterSizeExceedsLimit,
			"zipped cluster size %d, max unzipped cluster size %d", o.ApproxZippedClusterSize, o.MaxUnzippedClusterSize)
	}
	if o.HasSmallClusters && o.MaxUnzippedClusterSize > MaxSmallClusterSize {
		return errors.Wrapf(ErrSmallClusterLimitExceeded,
			"max unzipped cluster size %d, small cluster limit %d", o.MaxUnzippedClusterSize, MaxSmallClusterSize)
	}
	return nil
}

// WriteOptionsDaos 对象存储后端的写入配置, 在通用配置的基础上增加两个配置项
type WriteOptionsDaos struct {
	WriteOptions

	// 后端生成用户数据对象 id 时使用的冗余/放置策略, 内容只有后端自己理解
	ObjectClass string

	// 多个 page 拼接成一个 cage 对象时的大小上限, 以字节为单位
	// 为 0 表示不做拼接; 后端假设这个值不会比 ApproxUnzippedPageSize 小
	MaxCageSize uint32
}

// DefaultWriteOptionsDaos 对象存储后端的默认写入配置
var DefaultWriteOptionsDaos = WriteOptionsDaos{
	WriteOptions: DefaultWriteOptions,
	ObjectClass:  "SX",
	MaxCageSize:  DefaultMaxCageSize,
}

// Clone 复制一份独立的配置, 包括继承的通用配置项
func (o *WriteOptionsDaos) Clone() WriteConfig {
	clone := *o
	return &clone
}

// Validate 在通用约束的基础上, 额外要求 ObjectClass 非空
func (o *WriteOptionsDaos) Validate() error {
	if err := o.WriteOptions.Validate(); err != nil {
		return err
	}
	if o.ObjectClass == "" {
		return ErrObjectClassIsEmpty
	}
	return nil
}

// ClusterCacheMode cluster 缓存开关
type ClusterCacheMode = int8

const (
	// ClusterCacheOff 关闭 cluster 缓存
	ClusterCacheOff ClusterCacheMode = iota

	// ClusterCacheOn 开启 cluster 缓存, 读取时整个 cluster 提前加载进内存
	ClusterCacheOn
)

// ReadOptions 读取时的配置项, 所有后端的 page source 都需要支持
type ReadOptions struct {
	// 是否在消费之前把整个 cluster 提前缓存进内存
	ClusterCache ClusterCacheMode

	// 开启 cluster 缓存时, 一次一起预取多少个 cluster
	ClusterBunchSize uint32
}

// DefaultReadOptions 默认读取配置
var DefaultReadOptions = ReadOptions{
	ClusterCache:     ClusterCacheOn,
	ClusterBunchSize: 1,
}
