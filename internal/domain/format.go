package domain

import (
	"fmt"
	"strings"
	"time"
)

// Italian month names, keyed by time.Month.
var monthNames = map[time.Month]string{
	time.January:   "Gennaio",
	time.February:  "Febbraio",
	time.March:     "Marzo",
	time.April:     "Aprile",
	time.May:       "Maggio",
	time.June:      "Giugno",
	time.July:      "Luglio",
	time.August:    "Agosto",
	time.September: "Settembre",
	time.October:   "Ottobre",
	time.November:  "Novembre",
	time.December:  "Dicembre",
}

// Italian weekday names, keyed by time.Weekday.
var dayNames = map[time.Weekday]string{
	time.Monday:    "Lunedì",
	time.Tuesday:   "Martedì",
	time.Wednesday: "Mercoledì",
	time.Thursday:  "Giovedì",
	time.Friday:    "Venerdì",
	time.Saturday:  "Sabato",
	time.Sunday:    "Domenica",
}

// FormatDate renders t as e.g. "Sabato 1 Marzo".
func FormatDate(t time.Time) string {
	return fmt.Sprintf("%s %d %s", dayNames[t.Weekday()], t.Day(), monthNames[t.Month()])
}

func categoryLines(cats []WasteCategory, bold bool) string {
	lines := make([]string, 0, len(cats))
	for _, c := range cats {
		if bold {
			lines = append(lines, fmt.Sprintf("%s *%s*", Emoji[c], c))
		} else {
			lines = append(lines, fmt.Sprintf("%s %s", Emoji[c], c))
		}
	}
	return strings.Join(lines, "\n")
}

// DayReport renders the /oggi and /domani reply for the given date.
// when is "Oggi" or "Domani"; putOut tells the resident when to put the
// waste on the street.
func DayReport(when string, date time.Time, cats []WasteCategory, putOut string) string {
	if len(cats) == 0 {
		return fmt.Sprintf("📅 %s, %s, non è prevista alcuna raccolta di rifiuti.", when, FormatDate(date))
	}
	return fmt.Sprintf("📅 %s, %s, verranno raccolti:\n\n%s\n\nRicorda: posiziona i rifiuti in strada non prima delle ore 20:00 %s.",
		when, FormatDate(date), categoryLines(cats, false), putOut)
}

// ReminderText composes the daily notification about tomorrow's collection.
// When textiles are collected and the user registered an address, an
// address-specific clause is appended. Returns "" on a day with no
// collection; the caller sends nothing then.
func ReminderText(tomorrow time.Time, cats []WasteCategory, address string) string {
	if len(cats) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "📢 *PROMEMORIA RACCOLTA RIFIUTI*\n\nDomani, %s, verranno raccolti:\n\n%s",
		FormatDate(tomorrow), categoryLines(cats, true))
	b.WriteString("\n\nRicorda: posiziona i rifiuti in strada non prima delle ore 20:00 di oggi.")
	if address != "" && containsCategory(cats, Textiles) {
		fmt.Fprintf(&b, "\n\n👕 *IMPORTANTE*: Domani è prevista la raccolta di tessili e indumenti usati. "+
			"Il tuo indirizzo registrato è: %s. Ricorda di segnalare via WhatsApp al 324 150 8217.", address)
	}
	return b.String()
}

func containsCategory(cats []WasteCategory, want WasteCategory) bool {
	for _, c := range cats {
		if c == want {
			return true
		}
	}
	return false
}

// InfoText lists the disposal instructions and the collection-centre hours.
func InfoText() string {
	var b strings.Builder
	b.WriteString("ℹ️ *ISTRUZIONI PER LA RACCOLTA DIFFERENZIATA*\n\n")
	for _, c := range Categories {
		fmt.Fprintf(&b, "%s *%s*\n%s\n\n", Emoji[c], c, Instructions[c])
	}
	b.WriteString("⏰ *ORARI CENTRO DI RACCOLTA*\n\n" +
		"*Dal 1° Aprile al 30 Settembre:*\n" +
		"- Martedì: 9.00 - 13.00\n" +
		"- Giovedì: 14.00 - 18.00\n" +
		"- Sabato: 9.00 - 12.00, 15.00 - 18.00\n\n" +
		"*Dal 1° Ottobre al 31 Marzo:*\n" +
		"- Martedì: 10.00 - 13.00\n" +
		"- Giovedì: 14.00 - 17.00\n" +
		"- Sabato: 10.00 - 13.00, 14.00 - 17.00\n\n" +
		"⚠️ *NOTA*: La raccolta dei rifiuti viene effettuata a partire dalle ore 5.00. " +
		"Posizionare i rifiuti in strada non prima delle ore 20.00 del giorno precedente.\n\n" +
		"Per segnalare disservizi: tel. 0363/860737")
	return b.String()
}
