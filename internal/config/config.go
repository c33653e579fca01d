package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client used for remote vCard imports.
var UserAgent = "Go-DOB/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName          = "Go DOB"
	AppID            = "com.github.tartampluch.go-dob"
	LogFileName      = "app.log"
	SettingsFileName = "config.yaml"
	DefaultLanguage  = "en"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagConfig       = "config"
	FlagToday        = "today"
	FlagICS          = "ics"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging"
	FlagDescConfig   = "Path to a YAML settings file"
	FlagDescToday    = "Evaluate against this date (YYYY-MM-DD) instead of the current day"
	FlagDescICS      = "Print the next birthday as an iCalendar document"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// Command tree of the dob CLI.
const (
	CmdRootUse      = "dob"
	CmdRootShort    = "Date of birth calculator"
	CmdCalcUse      = "calc DAY MONTH YEAR"
	CmdCalcShort    = "Compute age, next birthday, zodiac sign and cohorts for a birth date"
	CmdVCardUse     = "vcard SOURCE"
	CmdVCardShort   = "Compute from the first contact with a birth year in a vCard file or URL"
	CmdTUIUse       = "tui"
	CmdTUIShort     = "Start the terminal calculator"
	CmdVersionUse   = "version"
	CmdVersionShort = "Print version information"

	OutRowFormat     = "%-24s %s\n"
	OutNoticeFormat  = "%s: %s\n"
	OutContactFormat = "%s\n\n"
	OutCardFormat    = "%s %s\n\n"
)

// -----------------------------------------------------------------------------
// Input Limits
// -----------------------------------------------------------------------------

const (
	MaxDayDigits   = 2
	MaxMonthDigits = 2
	MaxYearDigits  = 4
)

// -----------------------------------------------------------------------------
// Confetti Defaults
// -----------------------------------------------------------------------------

const (
	DefaultBurstParticles = 140
	DefaultBurstDuration  = 4500 * time.Millisecond
	DefaultBurstGravity   = 0.06 // Velocity gained per frame.
	DefaultCullMargin     = 50.0 // Below the surface bottom.
	MaxBurstParticles     = 5000

	// Spawn envelope, in surface units.
	SpawnOffsetY  = 10.0
	SpawnBandY    = 200.0
	SpawnSpeedX   = 6.0
	SpawnSpeedMin = 2.0
	SpawnSpeedY   = 3.0
	SpawnSizeMin  = 6.0
	SpawnSizeSpan = 8.0
	SpawnSpin     = 8.0
	FullTurnDeg   = 360.0

	// ParticleAspect is the height/width ratio of a confetti strip.
	ParticleAspect = 0.6

	// FrameInterval is the reference frame used to scale elapsed time into ticks.
	FrameInterval    = time.Second / 60
	TUIFrameInterval = time.Second / 30

	// TUI cells map to this many surface units.
	TUICellWidth  = 8.0
	TUICellHeight = 16.0
	TUIBurstRows  = 12
	TUIWidth      = 60
)

// DefaultPalette is the confetti color set.
var DefaultPalette = []string{
	"#FF4D4D", "#FFD166", "#06D6A0", "#4FD1C5",
	"#7C5CFF", "#FFA07A", "#F472B6", "#60A5FA",
}

// -----------------------------------------------------------------------------
// UI Constants
// -----------------------------------------------------------------------------

const (
	WindowWidth       = 460
	WindowHeight      = 640
	ModalAutoHide     = 4200 * time.Millisecond
	LayoutColumns     = 2
	LayoutColumnsDate = 3

	DateFormatDisplay = "Jan 2, 2006"
	DateFormatNoYear  = "Jan 2"
	DateFormatISO     = "2006-01-02"
	VCardExtension    = ".vcf"

	// Contacts picker
	ContactsWinWidth  = 440
	ContactsWinHeight = 380
	ColIDName         = 0
	ColIDDate         = 1
	ColIDAge          = 2
	ColWidthName      = 200
	ColWidthDate      = 130
	ColWidthAge       = 70
	SortIconAsc       = " ▲"
	SortIconDesc      = " ▼"
	TablePlaceholder  = "Placeholder"
	AgeUnknown        = "?"

	LogMsgCalc     = "Calculation requested"
	LogMsgCleared  = "Results cleared"
	LogMsgImported = "Birth date imported from vCard"
	LogMsgCopied   = "Next birthday copied as iCalendar"
	LogMsgOpenWin  = "Opening contacts window"
	LogMsgSorted   = "Contacts sorted"
	LogMsgPicked   = "Contact picked"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	// Window & Controls
	TKeyWinTitle     = "win_title"
	TKeyLblDay       = "lbl_day"
	TKeyLblMonth     = "lbl_month"
	TKeyLblYear      = "lbl_year"
	TKeyBtnCalculate = "btn_calculate"
	TKeyBtnClear     = "btn_clear"
	TKeyBtnImport    = "btn_import"
	TKeyBtnCopyICS   = "btn_copy_ics"
	TKeyCardTitle    = "card_birthday_title"
	TKeyCardSubtitle = "card_birthday_subtitle"
	TKeyNotifCopied  = "notif_ics_copied"
	TKeyTUIHelp      = "tui_help"

	// Contacts picker
	TKeyWinContacts    = "win_contacts"
	TKeyColName        = "col_name"
	TKeyColBirthday    = "col_birthday"
	TKeyColAge         = "col_age"
	TKeyErrImportTitle = "err_import_title"

	// Result Rows
	TKeyRowAge          = "row_age"
	TKeyRowBirthDay     = "row_birth_day"
	TKeyRowBirthMonth   = "row_birth_month"
	TKeyRowBirthYear    = "row_birth_year"
	TKeyRowNextBirthday = "row_next_birthday"
	TKeyRowDaysLeft     = "row_days_left"
	TKeyRowLifeStage    = "row_life_stage"
	TKeyRowGeneration   = "row_generation"
	TKeyRowZodiacSign   = "row_zodiac_sign"
	TKeyRowZodiacColor  = "row_zodiac_color"
	TKeyRowZodiacTraits = "row_zodiac_traits"

	// Result Values
	TKeyValYears         = "val_years"          // Requires Count
	TKeyValDays          = "val_days"           // Requires Count
	TKeyValToday         = "val_next_today"     // Requires Date
	TKeyValBirthdayToday = "val_birthday_today" // Days-left text on the day itself

	// Generations
	TKeyGenGreatest = "gen_greatest"
	TKeyGenSilent   = "gen_silent"
	TKeyGenBoomer   = "gen_baby_boomer"
	TKeyGenX        = "gen_x"
	TKeyGenMill     = "gen_millennial"
	TKeyGenZ        = "gen_z"
	TKeyGenAlpha    = "gen_alpha"

	// Life Stages
	TKeyStageInfant  = "stage_infant"
	TKeyStageToddler = "stage_toddler"
	TKeyStageChild   = "stage_child"
	TKeyStageTeen    = "stage_teen"
	TKeyStageAdult   = "stage_adult"
	TKeyStageMiddle  = "stage_middle_age"
	TKeyStageSenior  = "stage_senior"

	// User-facing errors
	TKeyErrIncompleteTitle = "err_incomplete_title"
	TKeyErrIncompleteMsg   = "err_incomplete_msg"
	TKeyErrInvalidTitle    = "err_invalid_title"
	TKeyErrInvalidMsg      = "err_invalid_msg"
	TKeyErrFutureTitle     = "err_future_title"
	TKeyErrFutureMsg       = "err_future_msg"
	TKeyErrGenericTitle    = "err_generic_title"
	TKeyErrGenericMsg      = "err_generic_msg"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion   = "2.0"
	ICalProdid    = "-//Go DOB//Engine//EN"
	ICalCalName   = "Birthdays"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"
	ICalDomain    = "godob"
	ICalRRule     = "FREQ=YEARLY"
	ICalTrigger   = "-P1D"

	// iCal/vCard Fields
	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropRRule       = "RRULE"
	PropAction      = "ACTION"
	PropDescription = "DESCRIPTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	VCardBDAY = "BDAY"
	VCardFN   = "FN"
	VCardN    = "N"

	FallbackName  = "Unknown"
	SummaryNoName = "Birthday"
)

// -----------------------------------------------------------------------------
// Data Formats, Limits & Hashing
// -----------------------------------------------------------------------------

const (
	// Date layouts used for parsing vCard BDAY fields
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatFullT     = "2006-01-02T15:04:05Z"
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"

	// UID Generation
	UIDHashLength   = 16
	UIDSalt         = "go-dob-v1-"
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s@%s"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	HTTPTimeout         = 30 * time.Second
	MaxHTTPResponseSize = 16 * 1024 * 1024 // 16MB
	SchemeHTTP          = "http"
	SchemeHTTPS         = "https"
	HeaderUserAgent     = "User-Agent"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrIncompleteInput  = "incomplete input"
	ErrInvalidDate      = "invalid date"
	ErrFutureDate       = "date of birth is in the future"
	ErrAgeComputation   = "could not calculate age"
	ErrNotANumber       = "field is not a number"
	ErrInvalidURL       = "invalid URL structure"
	ErrProtocol         = "unsupported protocol scheme (http/https only)"
	ErrVCardParse       = "failed to parse vCard stream"
	ErrNoBirthDate      = "no birth date with a known year found"
	ErrICalEncode       = "failed to encode iCalendar data"
	ErrDateParse        = "unable to parse date"
	ErrLogFile          = "failed to open log file"
	ErrCacheDir         = "could not determine user cache dir"
	ErrConfigDir        = "could not determine user config dir"
	ErrCreateDir        = "could not create app cache dir"
	ErrAppFailed        = "application failed unexpectedly"
	ErrLocalesAccess    = "failed to access embedded locales"
	ErrLocaleLoad       = "failed to load locale file"
	ErrSettingsRead     = "failed to read settings file"
	ErrSettingsParse    = "failed to parse settings file"
	ErrSettingsInvalid  = "invalid settings"
	ErrTodayFlag        = "invalid --today value"
	ErrArgsCount        = "expected DAY MONTH YEAR"
	ErrTUIFailed        = "terminal UI failed"
	ErrClipboardMissing = "clipboard not available"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting      = "Starting application"
	MsgAppStop          = "Application stopped gracefully"
	MsgCtxCancel        = "Context cancelled, shutting down UI"
	MsgCalcRejected     = "Calculation rejected"
	MsgCalcDone         = "Calculation complete"
	MsgBdayToday        = "Birthday is today"
	MsgBurstStart       = "Confetti burst started"
	MsgBurstBusy        = "Confetti burst already running, spawn ignored"
	MsgBurstNoSurface   = "No rendering surface, confetti disabled"
	MsgBurstStop        = "Confetti burst finished"
	MsgSkippedCard      = "Skipping malformed vCard"
	MsgSkippedDate      = "Skipping invalid date format"
	MsgLocaleSkip       = "Skipping non-locale file"
	MsgLocaleBadName    = "Skipping malformed locale filename"
	MsgLocaleLoaded     = "Locale loaded successfully"
	MsgTransMissing     = "Missing translation key"
	MsgSettingsLoaded   = "Settings loaded"
	MsgSettingsDefaults = "Settings file not found, using defaults"
	MsgLogWarning       = "Warning: %s at %s: %v\n"
	MsgFetchStart       = "Initiating vCard download"
	MsgFetchStatus      = "Server returned error status"
	MsgFetchDownloading = "vCard downloading"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyDay       = "day"
	LogKeyMonth     = "month"
	LogKeyYear      = "year"
	LogKeyAge       = "age"
	LogKeyDaysLeft  = "days_left"
	LogKeyZodiac    = "zodiac"
	LogKeyBurstID   = "burst_id"
	LogKeyParticles = "particles"
	LogKeyDuration  = "duration_ms"
	LogKeyURL       = "url"
	LogKeyStatus    = "status_code"
	LogKeyLength    = "content_length"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyCount     = "count"
	LogKeyName      = "name"
	LogKeyValue     = "value"
	LogKeyPath      = "path"
	LogKeySortCol   = "sort_col"
	LogKeySortAsc   = "sort_asc"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyCommit  = "commit"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI       = "ui"
	CompTUI      = "tui"
	CompCLI      = "cli"
	CompEngine   = "engine"
	CompConfetti = "confetti"
	CompReport   = "report"
	CompFetcher  = "fetcher"
	CompConfig   = "config"
	CompMain     = "main"
	CompI18n     = "i18n"
)
