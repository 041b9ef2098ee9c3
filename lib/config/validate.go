package config

import (
	"strings"
)

// Properties files are matched against an allow-list by a naming
// convention in the path; anything else (e.g. the query overlay) skips
// validation entirely.
const (
	systemPropertiesFile = "config.properties"
	nodePropertiesFile   = "node.properties"
)

var supportedSystemProperties = map[string]struct{}{
	KeyMutableConfig:                 {},
	KeyQuerydVersion:                 {},
	KeyHTTPServerHTTPPort:            {},
	KeyHTTPServerReusePort:           {},
	KeyDiscoveryURI:                  {},
	KeyMaxDriversPerTask:             {},
	KeyConcurrentLifespansPerTask:    {},
	KeyHTTPExecThreads:               {},
	KeyHTTPServerHTTPSPort:           {},
	KeyHTTPServerHTTPSEnabled:        {},
	KeyHTTPSSupportedCiphers:         {},
	KeyHTTPSCertPath:                 {},
	KeyHTTPSKeyPath:                  {},
	KeyHTTPSClientCertAndKeyPath:     {},
	KeyNumIOThreads:                  {},
	KeyNumConnectorIOThreads:         {},
	KeyNumQueryThreads:               {},
	KeyNumSpillThreads:               {},
	KeySpillerSpillPath:              {},
	KeyShutdownOnsetSec:              {},
	KeySystemMemoryGb:                {},
	KeyAsyncCacheSsdGb:               {},
	KeyAsyncCacheSsdCheckpointGb:     {},
	KeyAsyncCacheSsdPath:             {},
	KeyAsyncCacheSsdDisableFileCow:   {},
	KeyEnableSerializedPageChecksum:  {},
	KeyUseMmapArena:                  {},
	KeyMmapArenaCapacityRatio:        {},
	KeyUseMmapAllocator:              {},
	KeyTaskLoggingEnabled:            {},
	KeyExprLoggingEnabled:            {},
	KeyLocalShuffleMaxPartitionBytes: {},
	KeyShuffleName:                   {},
	KeyHTTPEnableAccessLog:           {},
	KeyHTTPEnableStatsFilter:         {},
	KeyRegisterTestFunctions:         {},
	KeyHTTPMaxAllocateBytes:          {},
	KeyQueryMaxMemoryPerNode:         {},
	KeyEnableMemoryLeakCheck:         {},
	KeyRemoteFunctionServerPort:      {},
}

var supportedNodeProperties = map[string]struct{}{
	KeyNodeEnvironment: {},
	KeyNodeID:          {},
	KeyNodeIP:          {},
	KeyNodeLocation:    {},
	KeyNodeMemoryGb:    {},
}

// reportProperties partitions values against an allow-list and logs both
// halves. Unsupported keys are flagged for the operator but stay loaded
// and queryable.
func reportProperties(kind string, values map[string]string, supported map[string]struct{}) {
	var known, unknown strings.Builder
	for name, value := range values {
		dst := &unknown
		if _, ok := supported[name]; ok {
			dst = &known
		}
		dst.WriteString("  ")
		dst.WriteString(name)
		dst.WriteString("=")
		dst.WriteString(value)
		dst.WriteString("\n")
	}
	if known.Len() > 0 {
		log.Infof("STARTUP: Supported %s properties:\n%s", kind, known.String())
	}
	if unknown.Len() > 0 {
		log.Warnf("STARTUP: Unsupported %s properties:\n%s", kind, unknown.String())
	}
}

func reportSystemProperties(values map[string]string) {
	reportProperties("system", values, supportedSystemProperties)
}

func reportNodeProperties(values map[string]string) {
	reportProperties("node", values, supportedNodeProperties)
}
