package constants

// Application identity and config discovery
const (
	AppName         = "perfscript"
	EnvPrefix       = "PERFSCRIPT"
	ConfigName      = ".perfscript"
	ConfigType      = "yaml"
	SystemConfigDir = "/etc/perfscript"
)

// Defaults for configurable values
const (
	DefaultLogLevel    = "info"
	DefaultFormat      = "text"
	DefaultExamplesDir = "./perf-scripts"
)

// ScriptExtensions are the file extensions treated as performance scripts
// when a directory is given instead of a file.
var ScriptExtensions = []string{"ijperf", "perf", "txt"}
