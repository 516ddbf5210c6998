package main

import (
	"github.com/hibiken/asynq"

	bookjob "bookstore-backoffice/internal/domains/book/job"
	offerjob "bookstore-backoffice/internal/domains/offer/job"
	orderjob "bookstore-backoffice/internal/domains/order/job"
	"bookstore-backoffice/internal/infrastructure/email"
	"bookstore-backoffice/internal/shared"
	"bookstore-backoffice/pkg/container"
)

// HandlerRegistry holds all job handlers.
type HandlerRegistry struct {
	sendOrderConfirmation  *orderjob.SendConfirmationHandler
	processBookImage       *bookjob.ProcessImageHandler
	deactivateExpiredOffer *offerjob.DeactivateExpiredHandler
}

func initializeHandlers(c *container.Container) *HandlerRegistry {
	mailer := email.NewSMTPEmailService(
		c.Config.SMTP.Host, c.Config.SMTP.Port, c.Config.SMTP.From)

	return &HandlerRegistry{
		sendOrderConfirmation:  orderjob.NewSendConfirmationHandler(c.OrderRepo, mailer),
		processBookImage:       bookjob.NewProcessImageHandler(c.Storage, c.ImageProcessor),
		deactivateExpiredOffer: offerjob.NewDeactivateExpiredHandler(c.OfferService),
	}
}

func (r *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeOrderSendConfirmation, r.sendOrderConfirmation.Handle)
	mux.HandleFunc(shared.TypeBookProcessImage, r.processBookImage.Handle)
	mux.HandleFunc(shared.TypeOfferDeactivateExpired, r.deactivateExpiredOffer.Handle)
}
