package web

import (
	"strings"

	"github.com/avstrong/hotelrates/internal/pricing"
)

// maxInquiryLength bounds the free text accepted per inquiry.
const maxInquiryLength = 4096

type InquiryInput struct {
	Text string `json:"text"`
}

func (in *InquiryInput) validate() error {
	inputErr := newInputError()

	if strings.TrimSpace(in.Text) == "" {
		inputErr.addError("text", "provide inquiry text")
	}

	if len(in.Text) > maxInquiryLength {
		inputErr.addError("text", "inquiry text is too long")
	}

	if inputErr.fieldsCount() > 0 {
		return inputErr
	}

	return nil
}

type InquiryOutput struct {
	ID    string `json:"id"`
	Reply string `json:"reply"`
}

type RatesOutput struct {
	Rooms   []pricing.RoomRate `json:"rooms"`
	Seasons []pricing.Anchor   `json:"seasons"`
}
