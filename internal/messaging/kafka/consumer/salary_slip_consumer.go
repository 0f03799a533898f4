package consumer

import (
	"context"
	"encoding/json"

	"github.com/Rohini2302/Sk-enterprises/internal/events"
	"github.com/Rohini2302/Sk-enterprises/internal/payroll"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func ConsumeSalarySlipRequested(
	ctx context.Context,
	reader *kafkago.Reader,
	payrollService payroll.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.salary_slip")
	log.Info("salary slip consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("salary slip consumer stopped")
				return
			}
			log.Error("fetch salary slip message failed", zap.Error(err))
			continue
		}

		var event events.SalarySlipRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode salary slip event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		_, err = payrollService.GenerateSlip(ctx, event.CompanyID, event.PayrollID)
		if err != nil {
			log.Error("generate salary slip failed",
				zap.String("payroll_id", event.PayrollID),
				zap.String("company_id", event.CompanyID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit salary slip message failed", zap.Error(err))
			continue
		}

		log.Info("salary slip generated",
			zap.String("payroll_id", event.PayrollID),
			zap.String("company_id", event.CompanyID),
		)
	}
}
