package domain

type CommandType string

const (
	CommandToday       CommandType = "today"
	CommandProfile     CommandType = "profile"
	CommandChallenges  CommandType = "challenges"
	CommandAlertOn     CommandType = "alert_on"
	CommandAlertOff    CommandType = "alert_off"
	CommandAlertStatus CommandType = "alert_status"
	CommandForget      CommandType = "forget"
	CommandHelp        CommandType = "help"
	CommandUnknown     CommandType = "unknown"
)

func (c CommandType) String() string {
	return string(c)
}

func (c CommandType) IsValid() bool {
	switch c {
	case CommandToday, CommandProfile, CommandChallenges,
		CommandAlertOn, CommandAlertOff, CommandAlertStatus,
		CommandForget, CommandHelp, CommandUnknown:
		return true
	default:
		return false
	}
}
