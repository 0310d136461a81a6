package adapter

import (
	"fmt"
	"strings"

	"github.com/kapu/alignment-bot-go/internal/alignment"
	"github.com/kapu/alignment-bot-go/internal/domain"
	"github.com/kapu/alignment-bot-go/internal/service/briefing"
	"github.com/kapu/alignment-bot-go/internal/service/user"
	"github.com/kapu/alignment-bot-go/internal/util"
)

// ResponseFormatter formats bot responses.
type ResponseFormatter struct {
	prefix string
}

func NewResponseFormatter(prefix string) *ResponseFormatter {
	if strings.TrimSpace(prefix) == "" {
		prefix = "!"
	}
	return &ResponseFormatter{prefix: prefix}
}

type windowView struct {
	Label      string
	Time       string
	Reason     string
	Confidence int
}

type briefingView struct {
	Header      string
	Overall     int
	DayScore    int
	Confidence  int
	EnergyType  string
	TopPriority string
	Narration   string
	Windows     []windowView
	BestFor     string
	Avoid       string
	Opportunity string
	Caution     string
	Footer      string
}

// FormatBriefing renders a user's daily briefing.
func (f *ResponseFormatter) FormatBriefing(b *briefing.Briefing) string {
	header := fmt.Sprintf("📊 Daily alignment · %s (%s)", b.Date.Format(util.DateLayout), b.Date.Weekday())
	if name := displayName(b.User); name != "" {
		header = fmt.Sprintf("📊 Daily alignment for %s · %s (%s)", name, b.Date.Format(util.DateLayout), b.Date.Weekday())
	}
	return f.renderBriefing(b, header, "")
}

// FormatMorningBriefing renders the scheduled morning message.
func (f *ResponseFormatter) FormatMorningBriefing(b *briefing.Briefing) string {
	header := fmt.Sprintf("☀️ Good morning · %s", b.Date.Format(util.DateLayout))
	if name := displayName(b.User); name != "" {
		header = fmt.Sprintf("☀️ Good morning %s · %s", name, b.Date.Format(util.DateLayout))
	}
	footer := fmt.Sprintf("%salert off to stop these messages", f.prefix)
	return f.renderBriefing(b, header, footer)
}

func (f *ResponseFormatter) renderBriefing(b *briefing.Briefing, header, footer string) string {
	in := b.Result.Insights
	c := b.Result.Combined

	view := briefingView{
		Header:      header,
		Overall:     c.OverallAlignment,
		DayScore:    c.PerfectDayScore,
		Confidence:  c.ConfidenceScore,
		EnergyType:  c.EnergyType.Name,
		TopPriority: in.TopPriority,
		Narration:   b.Narration,
		Windows: []windowView{
			newWindowView(domain.ActivityMeetings, in.Meetings),
			newWindowView(domain.ActivityDecisions, in.Decisions),
			newWindowView(domain.ActivityDeals, in.Deals),
			newWindowView(domain.ActivityPlanning, in.Planning),
		},
		BestFor:     strings.Join(in.BestFor, "; "),
		Avoid:       strings.Join(in.Avoid, "; "),
		Opportunity: in.Opportunity,
		Caution:     in.Caution,
		Footer:      footer,
	}

	text, err := executeFormatterTemplate("briefing", view)
	if err != nil {
		return f.plainBriefing(view)
	}
	return text
}

func (f *ResponseFormatter) plainBriefing(v briefingView) string {
	var sb strings.Builder
	sb.WriteString(v.Header + "\n")
	sb.WriteString(fmt.Sprintf("Overall %d · Day score %d · Confidence %d\n\n", v.Overall, v.DayScore, v.Confidence))
	sb.WriteString("🎯 " + v.TopPriority + "\n")
	for _, w := range v.Windows {
		sb.WriteString(fmt.Sprintf("  • %s: %s\n", w.Label, w.Time))
	}
	sb.WriteString("💡 " + v.Opportunity + "\n")
	sb.WriteString("🛑 " + v.Caution)
	return sb.String()
}

func newWindowView(a domain.Activity, w domain.ActivityWindow) windowView {
	return windowView{Label: a.Label(), Time: w.Time, Reason: w.Reason, Confidence: w.Confidence}
}

func displayName(u user.User) string {
	return strings.TrimSpace(u.DisplayName)
}

// Summary is the deterministic one-paragraph narration used when no model
// reply is available.
func (f *ResponseFormatter) Summary(result alignment.Result) string {
	in := result.Insights
	parts := []string{in.TopPriority}
	if in.Deals.HasClockTime() {
		parts = append(parts, fmt.Sprintf("Your strongest slot for closing is %s.", in.Deals.Time))
	}
	parts = append(parts, in.Opportunity)
	return strings.Join(parts, " ")
}

// FormatChallenges renders the growth notes.
func (f *ResponseFormatter) FormatChallenges(p domain.ChallengesProfile) string {
	text, err := executeFormatterTemplate("challenges", p)
	if err != nil {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("🧭 Growth notes for %s\n", p.Name))
		for _, l := range p.LifeLessons {
			sb.WriteString("  • " + l + "\n")
		}
		return strings.TrimSuffix(sb.String(), "\n")
	}
	return text
}

// FormatRegistered confirms a stored birth date.
func (f *ResponseFormatter) FormatRegistered(u *user.User) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("✅ Saved birth date %s", u.BirthDate))
	if u.BirthPlace != "" {
		sb.WriteString(fmt.Sprintf(" (%s)", u.BirthPlace))
	}
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("%stoday for your daily briefing\n", f.prefix))
	sb.WriteString(fmt.Sprintf("%salert on for reminders before your best windows", f.prefix))
	return sb.String()
}

func (f *ResponseFormatter) FormatForgotten(deleted bool) string {
	if deleted {
		return "✅ Your birth data has been deleted."
	}
	return "ℹ️ No saved birth data to delete."
}

func (f *ResponseFormatter) FormatAlertSubscribed(added bool) string {
	if !added {
		return "ℹ️ Alerts are already on."
	}
	return fmt.Sprintf("🔔 Alerts on. You will get a morning briefing and a reminder before each best window.\n%salert off to stop.", f.prefix)
}

func (f *ResponseFormatter) FormatAlertUnsubscribed(removed bool) string {
	if removed {
		return "🔕 Alerts off."
	}
	return "ℹ️ Alerts were not on."
}

func (f *ResponseFormatter) FormatAlertStatus(subscribed bool) string {
	if subscribed {
		return fmt.Sprintf("🔔 Alerts are on. %salert off to stop.", f.prefix)
	}
	return fmt.Sprintf("🔕 Alerts are off. %salert on to start.", f.prefix)
}

// FormatAlertNotification renders a heads-up before a window.
func (f *ResponseFormatter) FormatAlertNotification(n domain.AlertNotification) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🔔 %s in %d min", n.Activity.Label(), n.LeadMinutes))
	if name := strings.TrimSpace(n.DisplayName); name != "" {
		sb.WriteString(fmt.Sprintf(" · %s", name))
	}
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("⏰ %s\n", n.Window.Time))
	sb.WriteString(n.Window.Reason)
	return sb.String()
}

func (f *ResponseFormatter) FormatHelp() string {
	p := f.prefix
	return fmt.Sprintf(`📊 Daily alignment bot

👤 Setup
  %sprofile <yyyy-mm-dd> [birth place] - save your birth date
  %sforget - delete your saved data

📅 Briefings
  %stoday [yyyy-mm-dd] - best windows for the day
  %schallenges [name] - growth notes

🔔 Alerts
  %salert on - morning briefing and window reminders
  %salert off
  %salert status`, p, p, p, p, p, p, p)
}

func (f *ResponseFormatter) FormatError(message string) string {
	return fmt.Sprintf("❌ %s", message)
}

func (f *ResponseFormatter) FormatNotRegistered() string {
	return f.FormatError(fmt.Sprintf("No birth date saved yet.\n%sprofile <yyyy-mm-dd> to get started.", f.prefix))
}

func (f *ResponseFormatter) FormatInvalidBirthDate(input string) string {
	return f.FormatError(fmt.Sprintf("'%s' is not a valid birth date. Use yyyy-mm-dd, e.g. %sprofile 1990-05-15", input, f.prefix))
}

func (f *ResponseFormatter) FormatInvalidDate(input string) string {
	return f.FormatError(fmt.Sprintf("'%s' is not a valid date. Use yyyy-mm-dd.", input))
}
