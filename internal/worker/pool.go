package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/infra"
)

const QueueAlertas = "jobs:alertas"

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// AlertaJob is the payload enqueued when the comparator detects a significant
// stock/cash discrepancy. The email to the supervisor goes out from the pool
// so the comparator never blocks on SMTP.
type AlertaJob struct {
	AlertaID      string          `json:"alerta_id"`
	PlanillaID    string          `json:"planilla_id"`
	LocalID       string          `json:"local_id"`
	Fecha         string          `json:"fecha"`
	Turno         string          `json:"turno"`
	MontoEsperado decimal.Decimal `json:"monto_esperado"`
	MontoReal     decimal.Decimal `json:"monto_real"`
	Diferencia    decimal.Decimal `json:"diferencia"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueAlerta pushes an alert-notification job to Redis.
func (d *Dispatcher) EnqueueAlerta(ctx context.Context, alertaID, planillaID, localID, fecha, turno string, esperado, real, diferencia decimal.Decimal) error {
	payload := AlertaJob{
		AlertaID:      alertaID,
		PlanillaID:    planillaID,
		LocalID:       localID,
		Fecha:         fecha,
		Turno:         turno,
		MontoEsperado: esperado,
		MontoReal:     real,
		Diferencia:    diferencia,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	job := Job{Type: "alerta", Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, QueueAlertas, encoded).Err()
}

// StartWorkerPool launches numWorkers goroutines consuming the alert queue.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, mailer *infra.Mailer, destino string, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, mailer, destino, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, mailer *infra.Mailer, destino string, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, QueueAlertas).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			processJob(result[1], mailer, destino)
		}
	}
}

// processJob is best-effort: a failed notification is logged and dropped. The
// alert row itself is already persisted; the email is a convenience signal.
func processJob(raw string, mailer *infra.Mailer, destino string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal job")
		return
	}
	var alerta AlertaJob
	if err := json.Unmarshal(job.Payload, &alerta); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal alerta payload")
		return
	}

	asunto := fmt.Sprintf("Alerta de cruce stock/caja — local %s, %s turno %s",
		alerta.LocalID, alerta.Fecha, alerta.Turno)
	cuerpo := fmt.Sprintf(
		"Se detectó una diferencia significativa entre el stock y el cierre de caja.\n\n"+
			"Planilla: %s\nVentas esperadas por stock: %s\nVentas registradas en caja: %s\nDiferencia: %s\n\n"+
			"Alerta: %s",
		alerta.PlanillaID, alerta.MontoEsperado, alerta.MontoReal, alerta.Diferencia, alerta.AlertaID)

	if err := mailer.SendAlerta(destino, asunto, cuerpo); err != nil {
		log.Error().
			Str("alerta_id", alerta.AlertaID).
			Err(err).
			Msg("failed to send alert email")
		return
	}
	log.Info().Str("alerta_id", alerta.AlertaID).Msg("alert email sent")
}
