package api

import (
	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"

	"github.com/faturalab/go-faturalab-client/faturalab/model"
)

type AuctionService interface {
	Upload(req *model.UploadAuctionRequest) (*resty.Response, error)
	Detail(req *model.AuctionDetailRequest) (*resty.Response, error)
	Reject(req *model.RejectAuctionRequest) (*resty.Response, error)
}

type auction struct {
	client Client
}

func NewAuctionService(client Client) AuctionService {
	return &auction{client: client}
}

func (a *auction) Upload(req *model.UploadAuctionRequest) (*resty.Response, error) {
	log.Debugf("upload auction %s with %d invoices", req.ReferenceNo, len(req.Invoices))
	return a.client.PostForm("/auction", "uploadAuctionParam", req)
}

func (a *auction) Detail(req *model.AuctionDetailRequest) (*resty.Response, error) {
	log.Debugf("auction detail %s", req.ReferenceNo)
	return a.client.PostForm("/auction/detail", "auctionDetailParam", req)
}

func (a *auction) Reject(req *model.RejectAuctionRequest) (*resty.Response, error) {
	log.Debugf("reject auction %s", req.ReferenceNo)
	return a.client.PostForm("/auction/reject", "rejectAuctionParam", req)
}
