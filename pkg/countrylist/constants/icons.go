package constants

// Material Design Icons code points, rendered with the icon font.
const (
	Start     = "\U000F040A"
	Select    = "\uEACC"
	WiFi      = "\uF1EB"
	WiFiOff   = "\U000F05AA"
	Refresh   = "\U000F0450"
	Earth     = "\U000F01E7"
	FlagEmpty = "\U000F023B"

	CloudRefresh  = "\U000F052A"
	CloudDownload = "\U000F0162"
	CloudAlert    = "\U000F09E0" // shown in the alert title
)
