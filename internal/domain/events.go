package domain

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// CampaignCreated is the factory's creation event
type CampaignCreated struct {
	CampaignID      *big.Int
	CampaignAddress common.Address
	Creator         common.Address
	Beneficiary     common.Address
	CampaignType    uint8
	BlockNumber     uint64
	TxHash          common.Hash
}

func (e CampaignCreated) String() string {
	return fmt.Sprintf("CampaignCreated: id=%s address=%s type=%d block=%d",
		e.CampaignID, e.CampaignAddress.Hex(), e.CampaignType, e.BlockNumber)
}

// Block is a newly observed chain head
type Block struct {
	Number uint64
	Hash   common.Hash
	Time   time.Time
}
