package telegram

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// UI texts in Italian, following the municipal bot's published wording.
const (
	welcomeFmt = "Ciao %s! 👋\n\n" +
		"Benvenuto al bot per la raccolta differenziata di Calvenzano.\n\n" +
		"Questo bot ti invierà notifiche sui giorni di raccolta dei rifiuti in base al calendario 2025 del Comune di Calvenzano.\n\n" +
		"Usa i seguenti comandi:\n" +
		"/oggi - Verifica quali rifiuti raccolgono oggi\n" +
		"/domani - Verifica quali rifiuti raccolgono domani\n" +
		"/setnotifica - Imposta l'orario della notifica giornaliera\n" +
		"/setindirizzo - Imposta il tuo indirizzo per i tessili\n" +
		"/info - Istruzioni per la raccolta differenziata\n" +
		"/stop - Disattiva le notifiche\n" +
		"/riattiva - Riattiva le notifiche"

	askTimeText     = "A che ora vuoi ricevere le notifiche per la raccolta rifiuti?"
	askCustomTime   = "Per favore, invia l'orario in cui desideri ricevere le notifiche nel formato HH:MM (es. 19:30)"
	badTimeText     = "Formato orario non valido. Per favore, usa il formato HH:MM (es. 19:30)"
	timeSetFmt      = "Notifiche impostate per le %s."
	askAddressText  = "Vuoi impostare il tuo indirizzo per la raccolta dei tessili?"
	askAddressInput = "Per favore, invia il tuo indirizzo (via e numero civico)"
	addressSetFmt   = "Indirizzo impostato: %s"
	setupDoneText   = "Configurazione completata! Riceverai notifiche per la raccolta dei rifiuti.\n\nUsa /oggi per verificare la raccolta di oggi o /domani per quella di domani."
	stoppedText     = "Notifiche disattivate. Usa /riattiva per riattivarle."
	restartedText   = "Notifiche riattivate. Riceverai informazioni sulla raccolta differenziata."
	initErrorText   = "Errore di inizializzazione del profilo. Riprova più tardi."
	saveErrorText   = "Impossibile salvare l'impostazione. Riprova più tardi."
)

// timeKeyboard offers the notification-time choices of the onboarding flow.
func timeKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Adesso", "time:now"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("20:00 (Default)", "time:default"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Personalizza", "time:custom"),
		),
	)
}

// addressKeyboard asks whether to register an address for textile pickups.
func addressKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Sì", "addr:yes"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("No", "addr:no"),
		),
	)
}
