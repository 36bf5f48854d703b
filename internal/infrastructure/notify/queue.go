package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/Nomina-api/internal/application/sales"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// JobTicket tipo de trabajo para el envío de tickets.
const JobTicket = "ticket"

// DLQPrefix prefijo de la lista de trabajos agotados: dlq:{cola}.
const DLQPrefix = "dlq:"

// MaxAttempts intentos por trabajo antes de moverlo a la DLQ.
const MaxAttempts = 3

// popTimeout BRPOP espera como máximo esto antes de volver a revisar el contexto.
const popTimeout = 5 * time.Second

// Job sobre genérico de la cola.
type Job struct {
	Type     string          `json:"type"`
	Attempts int             `json:"attempts"`
	Payload  json.RawMessage `json:"payload"`
}

// DLQEntry trabajo fallido con metadatos para inspección manual.
type DLQEntry struct {
	Queue    string          `json:"queue"`
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	Reason   string          `json:"reason"`
	FailedAt string          `json:"failed_at"`
	Attempts int             `json:"attempts"`
}

// ── Dispatcher ────────────────────────────────────────────────────────────────

var _ sales.Notifier = (*Dispatcher)(nil)

// Dispatcher encola tickets en una lista de Redis (LPUSH); el pool los consume con BRPOP.
type Dispatcher struct {
	rdb   redis.Cmdable
	queue string
}

// NewDispatcher construye el dispatcher sobre la cola indicada.
func NewDispatcher(rdb redis.Cmdable, queue string) *Dispatcher {
	return &Dispatcher{rdb: rdb, queue: queue}
}

// NotifySale encola el ticket.
func (d *Dispatcher) NotifySale(ctx context.Context, t sales.Ticket) error {
	payload, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("encolar ticket: %w", err)
	}
	return push(ctx, d.rdb, d.queue, Job{Type: JobTicket, Payload: payload})
}

func push(ctx context.Context, rdb redis.Cmdable, queue string, job Job) error {
	encoded, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("encolar trabajo: %w", err)
	}
	if err := rdb.LPush(ctx, queue, encoded).Err(); err != nil {
		return fmt.Errorf("encolar trabajo en %s: %w", queue, err)
	}
	return nil
}

// ── Worker pool ───────────────────────────────────────────────────────────────

// WorkerPool goroutines que consumen la cola de tickets. Cada una bloquea en BRPOP.
type WorkerPool struct {
	rdb     redis.Cmdable
	queue   string
	workers int
	sender  TicketSender
	log     zerolog.Logger
	wg      sync.WaitGroup
}

// NewWorkerPool construye el pool; workers <= 0 usa 1.
func NewWorkerPool(rdb redis.Cmdable, queue string, workers int, sender TicketSender, log zerolog.Logger) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	return &WorkerPool{rdb: rdb, queue: queue, workers: workers, sender: sender, log: log}
}

// Start lanza los workers; terminan cuando ctx se cancela.
func (p *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run(ctx, i)
	}
	p.log.Info().Int("workers", p.workers).Str("queue", p.queue).Msg("pool de notificaciones iniciado")
}

// Wait espera a que todos los workers terminen.
func (p *WorkerPool) Wait() {
	p.wg.Wait()
}

func (p *WorkerPool) run(ctx context.Context, id int) {
	defer p.wg.Done()
	for {
		if ctx.Err() != nil {
			p.log.Debug().Int("worker", id).Msg("worker detenido")
			return
		}
		result, err := p.rdb.BRPop(ctx, popTimeout, p.queue).Result()
		if err != nil {
			if !errors.Is(err, redis.Nil) && ctx.Err() == nil {
				p.log.Warn().Err(err).Int("worker", id).Msg("error leyendo la cola")
				time.Sleep(time.Second)
			}
			continue
		}
		if len(result) < 2 {
			continue
		}
		p.Process(ctx, result[1])
	}
}

// Process ejecuta un trabajo crudo. Si el envío falla se reencola hasta MaxAttempts
// y después se mueve a la DLQ.
func (p *WorkerPool) Process(ctx context.Context, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		p.log.Error().Err(err).Str("queue", p.queue).Msg("trabajo ilegible")
		return
	}
	if job.Type != JobTicket {
		p.deadLetter(ctx, job, "tipo de trabajo desconocido")
		return
	}
	var t sales.Ticket
	if err := json.Unmarshal(job.Payload, &t); err != nil {
		p.deadLetter(ctx, job, "payload inválido: "+err.Error())
		return
	}

	job.Attempts++
	err := p.sender.SendTicket(ctx, t)
	if err == nil {
		p.log.Info().Str("folio", t.Folio).Int("attempt", job.Attempts).Msg("ticket enviado")
		return
	}
	if job.Attempts >= MaxAttempts {
		p.deadLetter(ctx, job, err.Error())
		return
	}
	p.log.Warn().Err(err).Str("folio", t.Folio).Int("attempt", job.Attempts).Msg("reintentando envío de ticket")
	if perr := push(ctx, p.rdb, p.queue, job); perr != nil {
		p.log.Error().Err(perr).Str("folio", t.Folio).Msg("no se pudo reencolar el ticket")
	}
}

func (p *WorkerPool) deadLetter(ctx context.Context, job Job, reason string) {
	entry := DLQEntry{
		Queue:    p.queue,
		Type:     job.Type,
		Payload:  job.Payload,
		Reason:   reason,
		FailedAt: time.Now().UTC().Format(time.RFC3339),
		Attempts: job.Attempts,
	}
	data, err := json.Marshal(entry)
	if err != nil {
		p.log.Error().Err(err).Msg("dlq: no se pudo serializar")
		return
	}
	if err := p.rdb.LPush(ctx, DLQPrefix+p.queue, data).Err(); err != nil {
		p.log.Error().Err(err).Str("queue", p.queue).Msg("dlq: no se pudo encolar")
		return
	}
	p.log.Warn().Str("type", job.Type).Str("reason", reason).Int("attempts", job.Attempts).Msg("trabajo movido a la DLQ")
}

// DLQLength trabajos en la DLQ de la cola.
func DLQLength(ctx context.Context, rdb redis.Cmdable, queue string) (int64, error) {
	return rdb.LLen(ctx, DLQPrefix+queue).Result()
}
