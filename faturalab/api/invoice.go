package api

import (
	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"

	"github.com/faturalab/go-faturalab-client/faturalab/model"
)

type InvoiceService interface {
	Upload(req *model.UploadInvoiceRequest) (*resty.Response, error)
	History(req *model.InvoiceHistoryRequest) (*resty.Response, error)
	Delete(req *model.DeleteInvoiceRequest) (*resty.Response, error)
}

type invoice struct {
	client Client
}

func NewInvoiceService(client Client) InvoiceService {
	return &invoice{client: client}
}

func (i *invoice) Upload(req *model.UploadInvoiceRequest) (*resty.Response, error) {
	log.Debugf("upload invoice %s", req.InvoiceNo)
	return i.client.PostForm("/invoice/upload", "uploadInvoiceParam", req)
}

func (i *invoice) History(req *model.InvoiceHistoryRequest) (*resty.Response, error) {
	log.Debugf("invoice history from %s", req.FromDate)
	return i.client.PostForm("/invoice/history", "invoiceHistoryParam", req)
}

func (i *invoice) Delete(req *model.DeleteInvoiceRequest) (*resty.Response, error) {
	log.Debugf("delete invoice %s", req.InvoiceNo)
	return i.client.PostForm("/invoice/delete", "deleteInvoiceParam", req)
}
