package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/Skrypnyk81/waste-bot/internal/domain"
)

// ensureUser makes sure a subscriber row exists for the message sender.
func (r *Router) ensureUser(ctx context.Context, msg *tgbotapi.Message) error {
	u := &domain.User{ChatID: msg.Chat.ID}
	if msg.From != nil {
		u.Username = msg.From.UserName
		u.FirstName = msg.From.FirstName
		u.LastName = msg.From.LastName
	}
	_, err := r.repo.CreateIfAbsent(ctx, u)
	return err
}

func (r *Router) sendText(chatID int64, text string) {
	_, _ = r.bot.Send(tgbotapi.NewMessage(chatID, text))
}

func (r *Router) answerCallback(id string) {
	_, _ = r.bot.Request(tgbotapi.NewCallback(id, ""))
}

// --- Onboarding flow ---

func (r *Router) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	if err := r.ensureUser(ctx, msg); err != nil {
		r.log.Error("ensureUser failed", zap.Error(err), zap.Int64("chatID", chatID))
		r.sendText(chatID, initErrorText)
		return
	}

	name := ""
	if msg.From != nil {
		name = msg.From.FirstName
	}
	r.sendText(chatID, fmt.Sprintf(welcomeFmt, name))
	r.askNotifyTime(chatID)
}

// askNotifyTime (re)enters the time-setting step of the flow.
func (r *Router) askNotifyTime(chatID int64) {
	req := tgbotapi.NewMessage(chatID, askTimeText)
	req.ReplyMarkup = timeKeyboard()
	_, _ = r.bot.Send(req)
	r.setState(chatID, stateAwaitTime)
}

func (r *Router) handleTimeCallback(ctx context.Context, chatID int64, data, cbID string) {
	r.answerCallback(cbID)

	var hhmm string
	switch data {
	case "time:now":
		hhmm = domain.ClockOf(r.now().In(r.loc)).String()
	case "time:default":
		hhmm = domain.DefaultNotifyTime
	case "time:custom":
		r.sendText(chatID, askCustomTime)
		r.setState(chatID, stateAwaitTime)
		return
	default:
		return
	}

	r.saveNotifyTime(ctx, chatID, hhmm)
}

// saveNotifyTime persists the chosen time and advances to the address step.
func (r *Router) saveNotifyTime(ctx context.Context, chatID int64, hhmm string) {
	ok, err := r.repo.SetNotifyTime(ctx, chatID, hhmm)
	if err != nil {
		r.log.Error("set notify time failed", zap.Error(err), zap.Int64("chatID", chatID))
		r.sendText(chatID, saveErrorText)
		return
	}
	if !ok {
		// Row missing: the user talked to us before ever sending /start.
		if _, err := r.repo.CreateIfAbsent(ctx, &domain.User{ChatID: chatID, NotifyTime: hhmm}); err != nil {
			r.log.Error("create on missing row failed", zap.Error(err), zap.Int64("chatID", chatID))
			r.sendText(chatID, saveErrorText)
			return
		}
	}
	r.sendText(chatID, fmt.Sprintf(timeSetFmt, hhmm))
	r.askAddressChoice(chatID)
}

func (r *Router) askAddressChoice(chatID int64) {
	req := tgbotapi.NewMessage(chatID, askAddressText)
	req.ReplyMarkup = addressKeyboard()
	_, _ = r.bot.Send(req)
	r.setState(chatID, stateAwaitAddress)
}

func (r *Router) handleAddressCallback(ctx context.Context, chatID int64, data, cbID string) {
	r.answerCallback(cbID)

	switch data {
	case "addr:yes":
		r.sendText(chatID, askAddressInput)
		r.setState(chatID, stateAwaitAddress)
	case "addr:no":
		r.finishSetup(ctx, chatID)
	}
}

// finishSetup closes the flow: notifications forced on, scheduler rearmed.
func (r *Router) finishSetup(ctx context.Context, chatID int64) {
	r.setState(chatID, stateNone)
	if _, err := r.repo.SetEnabled(ctx, chatID, true); err != nil {
		r.log.Error("enable at setup end failed", zap.Error(err), zap.Int64("chatID", chatID))
	}
	r.rearmer.Rearm(ctx)
	r.sendText(chatID, setupDoneText)
}

// handleFreeForm consumes free text according to the pending conversation
// step. Outside a flow it is ignored.
func (r *Router) handleFreeForm(ctx context.Context, chatID int64, text string) {
	switch r.getState(chatID) {
	case stateAwaitTime:
		clock, err := domain.ParseClock(text)
		if err != nil {
			// Malformed time re-prompts and stays in this state.
			r.sendText(chatID, badTimeText)
			return
		}
		r.saveNotifyTime(ctx, chatID, clock.String())

	case stateAwaitAddress:
		if ok, err := r.repo.SetAddress(ctx, chatID, text); err != nil || !ok {
			r.log.Error("set address failed", zap.Error(err), zap.Int64("chatID", chatID))
			r.sendText(chatID, saveErrorText)
			return
		}
		r.sendText(chatID, fmt.Sprintf(addressSetFmt, text))
		r.finishSetup(ctx, chatID)

	default:
		// No pending flow: ignore free-form message
	}
}

// --- Direct commands ---

func (r *Router) handleToday(ctx context.Context, chatID int64) {
	now := r.now().In(r.loc)
	cats := domain.CollectionFor(now.Day(), int(now.Month()))
	r.sendText(chatID, domain.DayReport("Oggi", now, cats, "del giorno precedente"))
}

func (r *Router) handleTomorrow(ctx context.Context, chatID int64) {
	tomorrow := domain.Tomorrow(r.now().In(r.loc))
	cats := domain.CollectionFor(tomorrow.Day(), int(tomorrow.Month()))
	r.sendText(chatID, domain.DayReport("Domani", tomorrow, cats, "di oggi"))
}

func (r *Router) handleSetNotify(ctx context.Context, msg *tgbotapi.Message) {
	if err := r.ensureUser(ctx, msg); err != nil {
		r.log.Error("ensureUser failed", zap.Error(err), zap.Int64("chatID", msg.Chat.ID))
		r.sendText(msg.Chat.ID, initErrorText)
		return
	}
	r.askNotifyTime(msg.Chat.ID)
}

func (r *Router) handleSetAddress(ctx context.Context, msg *tgbotapi.Message) {
	if err := r.ensureUser(ctx, msg); err != nil {
		r.log.Error("ensureUser failed", zap.Error(err), zap.Int64("chatID", msg.Chat.ID))
		r.sendText(msg.Chat.ID, initErrorText)
		return
	}
	r.sendText(msg.Chat.ID, askAddressInput)
	r.setState(msg.Chat.ID, stateAwaitAddress)
}

func (r *Router) handleInfo(_ context.Context, chatID int64) {
	_ = r.SendMessage(chatID, domain.InfoText())
}

func (r *Router) handleStop(ctx context.Context, chatID int64) {
	if _, err := r.repo.SetEnabled(ctx, chatID, false); err != nil {
		r.log.Error("disable failed", zap.Error(err), zap.Int64("chatID", chatID))
		r.sendText(chatID, saveErrorText)
		return
	}
	r.rearmer.Rearm(ctx)
	r.sendText(chatID, stoppedText)
}

func (r *Router) handleRestart(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	if err := r.ensureUser(ctx, msg); err != nil {
		r.log.Error("ensureUser failed", zap.Error(err), zap.Int64("chatID", chatID))
		r.sendText(chatID, initErrorText)
		return
	}
	if _, err := r.repo.SetEnabled(ctx, chatID, true); err != nil {
		r.log.Error("enable failed", zap.Error(err), zap.Int64("chatID", chatID))
		r.sendText(chatID, saveErrorText)
		return
	}
	r.rearmer.Rearm(ctx)
	r.sendText(chatID, restartedText)
}
