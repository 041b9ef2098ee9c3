package config

import (
	"net"
	"runtime"
	"sync"
)

// System property keys recognized by the worker. These are the names the
// operator writes into config.properties.
const (
	KeyMutableConfig                 = "mutable-config"
	KeyQuerydVersion                 = "queryd.version"
	KeyHTTPServerHTTPPort            = "http-server.http.port"
	KeyHTTPServerReusePort           = "http-server.reuse-port"
	KeyDiscoveryURI                  = "discovery.uri"
	KeyMaxDriversPerTask             = "task.max-drivers-per-task"
	KeyConcurrentLifespansPerTask    = "task.concurrent-lifespans-per-task"
	KeyHTTPExecThreads               = "http_exec_threads"
	KeyHTTPServerHTTPSPort           = "http-server.https.port"
	KeyHTTPServerHTTPSEnabled        = "http-server.https.enabled"
	KeyHTTPSSupportedCiphers         = "https-supported-ciphers"
	KeyHTTPSCertPath                 = "https-cert-path"
	KeyHTTPSKeyPath                  = "https-key-path"
	KeyHTTPSClientCertAndKeyPath     = "https-client-cert-key-path"
	KeyNumIOThreads                  = "num-io-threads"
	KeyNumConnectorIOThreads         = "num-connector-io-threads"
	KeyNumQueryThreads               = "num-query-threads"
	KeyNumSpillThreads               = "num-spill-threads"
	KeySpillerSpillPath              = "experimental.spiller-spill-path"
	KeyShutdownOnsetSec              = "shutdown-onset-sec"
	KeySystemMemoryGb                = "system-memory-gb"
	KeyAsyncCacheSsdGb               = "async-cache-ssd-gb"
	KeyAsyncCacheSsdCheckpointGb     = "async-cache-ssd-checkpoint-gb"
	KeyAsyncCacheSsdPath             = "async-cache-ssd-path"
	KeyAsyncCacheSsdDisableFileCow   = "async-cache-ssd-disable-file-cow"
	KeyEnableSerializedPageChecksum  = "enable-serialized-page-checksum"
	KeyUseMmapArena                  = "use-mmap-arena"
	KeyMmapArenaCapacityRatio        = "mmap-arena-capacity-ratio"
	KeyUseMmapAllocator              = "use-mmap-allocator"
	KeyTaskLoggingEnabled            = "task-logging-enabled"
	KeyExprLoggingEnabled            = "expr-logging-enabled"
	KeyLocalShuffleMaxPartitionBytes = "local-shuffle.max-partition-bytes"
	KeyShuffleName                   = "shuffle.name"
	KeyHTTPEnableAccessLog           = "http-enable-access-log"
	KeyHTTPEnableStatsFilter         = "http-enable-stats-filter"
	KeyRegisterTestFunctions         = "register-test-functions"
	KeyHTTPMaxAllocateBytes          = "http-max-allocate-bytes"
	KeyQueryMaxMemoryPerNode         = "query.max-memory-per-node"
	KeyEnableMemoryLeakCheck         = "enable-memory-leak-check"
	KeyRemoteFunctionServerPort      = "remote-function-server.port"
)

// Compiled-in defaults for the optional system properties.
const (
	DefaultHTTPServerReusePort           = false
	DefaultHTTPServerHTTPSEnabled        = false
	DefaultHTTPSSupportedCiphers         = "ECDHE-ECDSA-AES256-GCM-SHA384,AES256-GCM-SHA384"
	DefaultMaxDriversPerTask             = int32(16)
	DefaultConcurrentLifespansPerTask    = int32(1)
	DefaultHTTPExecThreads               = int32(8)
	DefaultNumIOThreads                  = int32(30)
	DefaultNumConnectorIOThreads         = int32(30)
	DefaultShutdownOnsetSec              = int32(10)
	DefaultSystemMemoryGb                = int32(40)
	DefaultAsyncCacheSsdGb               = uint64(0)
	DefaultAsyncCacheSsdCheckpointGb     = uint64(0)
	DefaultAsyncCacheSsdPath             = "/mnt/flash/async_cache."
	DefaultAsyncCacheSsdDisableFileCow   = false
	DefaultEnableSerializedPageChecksum  = true
	DefaultUseMmapArena                  = false
	DefaultMmapArenaCapacityRatio        = int32(10)
	DefaultUseMmapAllocator              = false
	DefaultTaskLoggingEnabled            = false
	DefaultExprLoggingEnabled            = false
	DefaultLocalShuffleMaxPartitionBytes = uint64(1 << 28)
	DefaultShuffleName                   = ""
	DefaultHTTPEnableAccessLog           = false
	DefaultHTTPEnableStatsFilter         = false
	DefaultRegisterTestFunctions         = false
	DefaultHTTPMaxAllocateBytes          = uint64(64 << 20)
	DefaultQueryMaxMemoryPerNode         = uint64(0) // no per-node limit
	DefaultEnableMemoryLeakCheck         = true
)

// SystemConfig is the process-wide view over config.properties.
type SystemConfig struct {
	*ConfigBase
}

var (
	systemOnce     sync.Once
	systemInstance *SystemConfig
)

// GetSystemConfig returns the process-wide SystemConfig, constructing it
// on first use. The instance lives for the remainder of the process.
func GetSystemConfig() *SystemConfig {
	systemOnce.Do(func() {
		systemInstance = NewSystemConfig(FileReader{})
	})
	return systemInstance
}

// NewSystemConfig builds a standalone SystemConfig over reader; used by
// tests and embedders that avoid the global instance.
func NewSystemConfig(reader PropertiesReader) *SystemConfig {
	return &SystemConfig{ConfigBase: newConfigBase(reader)}
}

func (c *SystemConfig) QuerydVersion() (string, error) {
	return requiredProperty[string](c.ConfigBase, KeyQuerydVersion)
}

// MutableConfig reports the reflexive mutability flag. The store variant
// was already chosen from it at load time, so a frozen config answers
// false even if the flag is later overwritten.
func (c *SystemConfig) MutableConfig() bool {
	v, ok, err := optionalProperty[bool](c.ConfigBase, KeyMutableConfig)
	if err != nil || !ok {
		return false
	}
	return v
}

func (c *SystemConfig) HTTPServerHTTPPort() (int, error) {
	return requiredProperty[int](c.ConfigBase, KeyHTTPServerHTTPPort)
}

func (c *SystemConfig) HTTPServerReusePort() (bool, error) {
	return propertyOr(c.ConfigBase, KeyHTTPServerReusePort, DefaultHTTPServerReusePort)
}

func (c *SystemConfig) HTTPServerHTTPSPort() (int, error) {
	return requiredProperty[int](c.ConfigBase, KeyHTTPServerHTTPSPort)
}

func (c *SystemConfig) HTTPServerHTTPSEnabled() (bool, error) {
	return propertyOr(c.ConfigBase, KeyHTTPServerHTTPSEnabled, DefaultHTTPServerHTTPSEnabled)
}

func (c *SystemConfig) HTTPSSupportedCiphers() string {
	v, _ := propertyOr(c.ConfigBase, KeyHTTPSSupportedCiphers, DefaultHTTPSSupportedCiphers)
	return v
}

func (c *SystemConfig) HTTPSCertPath() (string, bool) {
	return c.Get(KeyHTTPSCertPath)
}

func (c *SystemConfig) HTTPSKeyPath() (string, bool) {
	return c.Get(KeyHTTPSKeyPath)
}

func (c *SystemConfig) HTTPSClientCertAndKeyPath() (string, bool) {
	return c.Get(KeyHTTPSClientCertAndKeyPath)
}

func (c *SystemConfig) DiscoveryURI() (string, bool) {
	return c.Get(KeyDiscoveryURI)
}

// RemoteFunctionServerLocation derives the remote function server address
// from its port property. Absence yields nil without error; the feature is
// simply disabled.
func (c *SystemConfig) RemoteFunctionServerLocation() (*net.TCPAddr, error) {
	port, ok, err := optionalProperty[uint16](c.ConfigBase, KeyRemoteFunctionServerPort)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &net.TCPAddr{IP: net.IPv6loopback, Port: int(port)}, nil
}

func (c *SystemConfig) MaxDriversPerTask() (int32, error) {
	return propertyOr(c.ConfigBase, KeyMaxDriversPerTask, DefaultMaxDriversPerTask)
}

func (c *SystemConfig) ConcurrentLifespansPerTask() (int32, error) {
	return propertyOr(c.ConfigBase, KeyConcurrentLifespansPerTask, DefaultConcurrentLifespansPerTask)
}

func (c *SystemConfig) HTTPExecThreads() (int32, error) {
	return propertyOr(c.ConfigBase, KeyHTTPExecThreads, DefaultHTTPExecThreads)
}

func (c *SystemConfig) NumIOThreads() (int32, error) {
	return propertyOr(c.ConfigBase, KeyNumIOThreads, DefaultNumIOThreads)
}

func (c *SystemConfig) NumConnectorIOThreads() (int32, error) {
	return propertyOr(c.ConfigBase, KeyNumConnectorIOThreads, DefaultNumConnectorIOThreads)
}

// NumQueryThreads defaults to four times the available parallelism.
func (c *SystemConfig) NumQueryThreads() (int32, error) {
	return propertyOr(c.ConfigBase, KeyNumQueryThreads, int32(runtime.NumCPU()*4))
}

// NumSpillThreads defaults to the available parallelism.
func (c *SystemConfig) NumSpillThreads() (int32, error) {
	return propertyOr(c.ConfigBase, KeyNumSpillThreads, int32(runtime.NumCPU()))
}

func (c *SystemConfig) SpillerSpillPath() string {
	v, _ := c.Get(KeySpillerSpillPath)
	return v
}

func (c *SystemConfig) ShutdownOnsetSec() (int32, error) {
	return propertyOr(c.ConfigBase, KeyShutdownOnsetSec, DefaultShutdownOnsetSec)
}

func (c *SystemConfig) SystemMemoryGb() (int32, error) {
	return propertyOr(c.ConfigBase, KeySystemMemoryGb, DefaultSystemMemoryGb)
}

func (c *SystemConfig) AsyncCacheSsdGb() (uint64, error) {
	return propertyOr(c.ConfigBase, KeyAsyncCacheSsdGb, DefaultAsyncCacheSsdGb)
}

func (c *SystemConfig) AsyncCacheSsdCheckpointGb() (uint64, error) {
	return propertyOr(c.ConfigBase, KeyAsyncCacheSsdCheckpointGb, DefaultAsyncCacheSsdCheckpointGb)
}

func (c *SystemConfig) AsyncCacheSsdPath() string {
	v, _ := propertyOr(c.ConfigBase, KeyAsyncCacheSsdPath, DefaultAsyncCacheSsdPath)
	return v
}

func (c *SystemConfig) AsyncCacheSsdDisableFileCow() (bool, error) {
	return propertyOr(c.ConfigBase, KeyAsyncCacheSsdDisableFileCow, DefaultAsyncCacheSsdDisableFileCow)
}

func (c *SystemConfig) EnableSerializedPageChecksum() (bool, error) {
	return propertyOr(c.ConfigBase, KeyEnableSerializedPageChecksum, DefaultEnableSerializedPageChecksum)
}

func (c *SystemConfig) UseMmapArena() (bool, error) {
	return propertyOr(c.ConfigBase, KeyUseMmapArena, DefaultUseMmapArena)
}

func (c *SystemConfig) MmapArenaCapacityRatio() (int32, error) {
	return propertyOr(c.ConfigBase, KeyMmapArenaCapacityRatio, DefaultMmapArenaCapacityRatio)
}

func (c *SystemConfig) UseMmapAllocator() (bool, error) {
	return propertyOr(c.ConfigBase, KeyUseMmapAllocator, DefaultUseMmapAllocator)
}

func (c *SystemConfig) TaskLoggingEnabled() (bool, error) {
	return propertyOr(c.ConfigBase, KeyTaskLoggingEnabled, DefaultTaskLoggingEnabled)
}

func (c *SystemConfig) ExprLoggingEnabled() (bool, error) {
	return propertyOr(c.ConfigBase, KeyExprLoggingEnabled, DefaultExprLoggingEnabled)
}

func (c *SystemConfig) LocalShuffleMaxPartitionBytes() (uint64, error) {
	return propertyOr(c.ConfigBase, KeyLocalShuffleMaxPartitionBytes, DefaultLocalShuffleMaxPartitionBytes)
}

func (c *SystemConfig) ShuffleName() string {
	v, _ := propertyOr(c.ConfigBase, KeyShuffleName, DefaultShuffleName)
	return v
}

func (c *SystemConfig) HTTPEnableAccessLog() (bool, error) {
	return propertyOr(c.ConfigBase, KeyHTTPEnableAccessLog, DefaultHTTPEnableAccessLog)
}

func (c *SystemConfig) HTTPEnableStatsFilter() (bool, error) {
	return propertyOr(c.ConfigBase, KeyHTTPEnableStatsFilter, DefaultHTTPEnableStatsFilter)
}

func (c *SystemConfig) RegisterTestFunctions() (bool, error) {
	return propertyOr(c.ConfigBase, KeyRegisterTestFunctions, DefaultRegisterTestFunctions)
}

func (c *SystemConfig) HTTPMaxAllocateBytes() (uint64, error) {
	return propertyOr(c.ConfigBase, KeyHTTPMaxAllocateBytes, DefaultHTTPMaxAllocateBytes)
}

// QueryMaxMemoryPerNode parses its raw value as a capacity string and
// answers in bytes.
func (c *SystemConfig) QueryMaxMemoryPerNode() (uint64, error) {
	raw, ok := c.Get(KeyQueryMaxMemoryPerNode)
	if !ok {
		return DefaultQueryMaxMemoryPerNode, nil
	}
	return ParseCapacity(raw, Byte)
}

func (c *SystemConfig) EnableMemoryLeakCheck() (bool, error) {
	return propertyOr(c.ConfigBase, KeyEnableMemoryLeakCheck, DefaultEnableMemoryLeakCheck)
}
