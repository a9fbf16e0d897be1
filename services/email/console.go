package emailsvc

import (
	"fmt"
	"log"
	"net/mail"
	"strings"

	"github.com/shuleni/kazi/core"
)

// consoleService writes emails to the log instead of sending them; used in
// debug/test mode.
type consoleService struct {
	logger *log.Logger
}

var _ core.EmailService = (*consoleService)(nil)

func NewConsoleService(logger *log.Logger) core.EmailService {
	return &consoleService{logger: logger}
}

func (svc *consoleService) SendMessages(messages ...*core.EmailMessage) {
	for _, msg := range messages {
		if !msg.HasRecipients() {
			continue
		}
		svc.logger.Printf(
			"\n--- EMAIL ---\nTo: %s\nSubject: %s\n\n%s\n-------------\n",
			joinAddresses(msg.To), msg.Subject, msg.Body,
		)
	}
}

func joinAddresses(addrs []mail.Address) string {
	strs := make([]string, 0, len(addrs))
	for _, addr := range addrs {
		strs = append(strs, fmt.Sprintf("%q <%s>", addr.Name, addr.Address))
	}
	return strings.Join(strs, ", ")
}
