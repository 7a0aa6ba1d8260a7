package collaborator

import (
	"github.com/duka-eats/payflow/internal/core/domain"
	"go.uber.org/zap"
)

// LogNotifier publishes lifecycle events to the log stream the downstream
// notification and analytics consumers tail. Delivery to customers is owned
// by those consumers, not by this service.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(log *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: log}
}

func (n *LogNotifier) OrderPaid(orderID uint64) {
	n.logger.Info("event: order paid", zap.Uint64("order", orderID))
}

func (n *LogNotifier) OrderDelivered(orderID uint64) {
	n.logger.Info("event: order delivered", zap.Uint64("order", orderID))
}

func (n *LogNotifier) DisbursementFinal(orderID uint64, role domain.RecipientRole, status domain.TransactionStatus) {
	n.logger.Info("event: disbursement final",
		zap.Uint64("order", orderID),
		zap.String("role", string(role)),
		zap.String("status", string(status)))
}
