package colstore

import "github.com/pkg/errors"

// PageSink 抽象页写入接口, 不同的存储后端实现这个接口即可
// 配置在 Open 的时候一次性传入, 会话期间不会再变化
type PageSink interface {
	// Open 接收最终的写入配置, 准备好接收 page
	Open(cfg WriteConfig) error

	// WritePage 写入一个 page 的数据
	WritePage(page []byte) error

	// CommitCluster 把当前缓冲的 page 作为一个 cluster 提交
	CommitCluster() error

	// Close 关闭写入端
	Close() error
}

// PageSource 抽象页读取接口
type PageSource interface {
	// Open 接收最终的读取配置
	Open(opts ReadOptions) error

	// ReadCluster 读取指定 cluster 的数据
	ReadCluster(idx uint64) ([]byte, error)

	// Close 关闭读取端
	Close() error
}

// WriteSession 一次写入会话, 持有打开时固定下来的配置副本
type WriteSession struct {
	sink   PageSink
	config WriteConfig
}

// OpenWriteSession 校验写入配置并打开一个写入会话
// 配置在这里复制一份交给后端, 之后调用方再怎么改原来的配置都不会影响这次会话
func OpenWriteSession(sink PageSink, cfg WriteConfig) (*WriteSession, error) {
	// 对调用方传入的配置项进行校验
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	frozen := cfg.Clone()
	if err := sink.Open(frozen); err != nil {
		return nil, errors.Wrap(err, "failed to open page sink")
	}

	return &WriteSession{
		sink:   sink,
		config: frozen,
	}, nil
}

// Config 返回会话打开时固定下来的配置
func (s *WriteSession) Config() WriteConfig {
	return s.config
}

// WritePage 写入一个 page, 直接转发给后端
func (s *WriteSession) WritePage(page []byte) error {
	return s.sink.WritePage(page)
}

// CommitCluster 提交当前 cluster
func (s *WriteSession) CommitCluster() error {
	return s.sink.CommitCluster()
}

// Close 关闭写入会话
func (s *WriteSession) Close() error {
	return s.sink.Close()
}

// ReadSession 一次读取会话, 读取配置在打开时按值保存
type ReadSession struct {
	source  PageSource
	options ReadOptions
}

// OpenReadSession 打开一个读取会话
func OpenReadSession(source PageSource, opts ReadOptions) (*ReadSession, error) {
	if err := source.Open(opts); err != nil {
		return nil, errors.Wrap(err, "failed to open page source")
	}

	return &ReadSession{
		source:  source,
		options: opts,
	}, nil
}

// Options 返回会话打开时保存的读取配置
func (s *ReadSession) Options() ReadOptions {
	return s.options
}

// ReadCluster 读取指定 cluster 的数据, 直接转发给后端
func (s *ReadSession) ReadCluster(idx uint64) ([]byte, error) {
	return s.source.ReadCluster(idx)
}

// Close 关闭读取会话
func (s *ReadSession) Close() error {
	return s.source.Close()
}
