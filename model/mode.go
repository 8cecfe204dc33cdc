package model

// Mode selects what the CLI prints.
type Mode string

const (
	ModeCPUInfoJSON  Mode = "-CJ"
	ModeCPUInfoXML   Mode = "-CX"
	ModeCPUInfoYAML  Mode = "-CY"
	ModeCPUInfoTable Mode = "-CT"
	ModePlatformJSON Mode = "-PJ"
	ModePlatformXML  Mode = "-PX"
	ModePlatformYAML Mode = "-PY"
	ModePlatformTbl  Mode = "-PT"
	ModeCatalog      Mode = "-L"
	ModeHardware     Mode = "-H"
	ModeSerial       Mode = "-S"
	ModeVersion      Mode = "-V"
	ModeModel        Mode = "-M"
	ModeRevision     Mode = "-R"
	ModeMemory       Mode = "-C"
	ModeCores        Mode = "-N"
	ModeProcessor    Mode = "-P"
)
