package telegram

import (
	"context"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/Skrypnyk81/waste-bot/internal/store"
)

// Conversation states of the onboarding flow.
type convState int

const (
	stateNone convState = iota
	stateAwaitTime
	stateAwaitAddress
)

// Rearmer triggers a fresh global scheduling pass. The scheduler implements
// it; the router calls it whenever a user edit affects scheduling.
type Rearmer interface {
	Rearm(ctx context.Context)
}

// BotAPI is the slice of *tgbotapi.BotAPI the router needs, so tests can
// substitute a fake transport.
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Router wires Telegram updates to handlers and holds the per-chat
// conversation state (non-persistent, in-memory).
type Router struct {
	bot  BotAPI
	log  *zap.Logger
	repo store.Repo
	loc  *time.Location
	now  func() time.Time

	rearmer Rearmer

	mu    sync.RWMutex
	state map[int64]convState
}

// NewRouter creates a new Telegram router. The Rearmer is attached
// separately because the scheduler needs the router as its Sender.
func NewRouter(bot BotAPI, log *zap.Logger, repo store.Repo, loc *time.Location) *Router {
	return &Router{
		bot:   bot,
		log:   log,
		repo:  repo,
		loc:   loc,
		now:   time.Now,
		state: make(map[int64]convState),
	}
}

// SetRearmer attaches the scheduler. Must be called before HandleUpdate.
func (r *Router) SetRearmer(s Rearmer) { r.rearmer = s }

func (r *Router) setState(chatID int64, s convState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s == stateNone {
		delete(r.state, chatID)
		return
	}
	r.state[chatID] = s
}

func (r *Router) getState(chatID int64) convState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state[chatID]
}

// HandleUpdate routes a single update to the appropriate handler.
func (r *Router) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	if upd.Message != nil {
		msg := upd.Message
		chatID := msg.Chat.ID
		text := strings.TrimSpace(msg.Text)

		switch {
		case strings.HasPrefix(text, "/start"):
			r.handleStart(ctx, msg)
		case strings.HasPrefix(text, "/oggi"):
			r.handleToday(ctx, chatID)
		case strings.HasPrefix(text, "/domani"):
			r.handleTomorrow(ctx, chatID)
		case strings.HasPrefix(text, "/setnotifica"):
			r.handleSetNotify(ctx, msg)
		case strings.HasPrefix(text, "/setindirizzo"):
			r.handleSetAddress(ctx, msg)
		case strings.HasPrefix(text, "/info"):
			r.handleInfo(ctx, chatID)
		case strings.HasPrefix(text, "/stop"):
			r.handleStop(ctx, chatID)
		case strings.HasPrefix(text, "/riattiva"):
			r.handleRestart(ctx, msg)
		default:
			// Free-form text feeds the pending conversation step, if any.
			r.handleFreeForm(ctx, chatID, text)
		}
		return
	}

	if upd.CallbackQuery != nil {
		cb := upd.CallbackQuery
		chatID := cb.Message.Chat.ID

		switch {
		case strings.HasPrefix(cb.Data, "time:"):
			r.handleTimeCallback(ctx, chatID, cb.Data, cb.ID)
		case strings.HasPrefix(cb.Data, "addr:"):
			r.handleAddressCallback(ctx, chatID, cb.Data, cb.ID)
		default:
			// Unknown callback — ignore silently
		}
		return
	}
}

// SendMessage sends a Markdown-formatted message to the given chat.
// This makes Router satisfy scheduler.Sender.
func (r *Router) SendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	_, err := r.bot.Send(msg)
	return err
}
