package mailer

import (
	"fmt"
	"html"
	"strconv"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"inkwell/logging"
	"inkwell/models"
	"inkwell/services"
)

const defaultQueueSize = 32

// Config carries the SMTP settings and the addresses moderation mail flows
// between.
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	From      string
	SiteAdmin string
	BaseURL   string
	QueueSize int
}

// Dispatcher delivers notification mail off the request path. Messages go
// through a bounded queue drained by a single worker; delivery is at most
// once, with no retry and no ordering guarantee. A full queue drops the
// message.
type Dispatcher struct {
	cfg    Config
	dialer *gomail.Dialer
	tokens services.TokenService

	queue  chan *gomail.Message
	done   chan struct{}
	mu     sync.Mutex
	closed bool
}

func NewDispatcher(cfg Config, tokens services.TokenService) *Dispatcher {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = defaultQueueSize
	}
	d := &Dispatcher{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		tokens: tokens,
		queue:  make(chan *gomail.Message, cfg.QueueSize),
		done:   make(chan struct{}),
	}
	go d.run()
	return d
}

// NotifyNewComment mails the site admin about a fresh comment, including a
// signed link that toggles its visibility. Never blocks and never reports
// failure to the caller.
func (d *Dispatcher) NotifyNewComment(comment *models.Comment) {
	token, err := d.tokens.Generate(strconv.FormatUint(uint64(comment.ID), 10), services.TokenKindCommentToggle)
	if err != nil {
		logging.L().Error("generate comment toggle token", zap.Uint("comment_id", comment.ID), zap.Error(err))
		return
	}
	toggleURL := fmt.Sprintf("%s/admin/comment/toggle/link?token=%s", d.cfg.BaseURL, token)

	m := gomail.NewMessage()
	m.SetHeader("From", d.cfg.From)
	m.SetHeader("To", d.cfg.SiteAdmin)
	m.SetHeader("Subject", fmt.Sprintf("New Comment from: %s", comment.User.Username))
	m.SetBody("text/html", commentMailBody(comment, toggleURL))

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		logging.L().Warn("dispatcher closed, dropping message", zap.Uint("comment_id", comment.ID))
		return
	}

	select {
	case d.queue <- m:
	default:
		logging.L().Warn("notification queue full, dropping message", zap.Uint("comment_id", comment.ID))
	}
}

// commentMailBody escapes the commenter-supplied username and text; both come
// straight off the public comment form.
func commentMailBody(comment *models.Comment, toggleURL string) string {
	return fmt.Sprintf(
		"<p><strong>%s</strong> commented:</p><blockquote>%s</blockquote><p><a href=%q>Toggle comment visibility</a></p>",
		html.EscapeString(comment.User.Username), html.EscapeString(comment.Text), toggleURL,
	)
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for m := range d.queue {
		if err := d.dialer.DialAndSend(m); err != nil {
			logging.L().Error("send notification mail", zap.Error(err))
		}
	}
}

// Close stops accepting messages, drains the queue and waits for the worker.
// NotifyNewComment calls racing Close drop their message instead of sending on
// a closed channel.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()
	<-d.done
}
