package utils

import (
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/forecastlabs/agent-portal/internal/constants"
	"github.com/forecastlabs/agent-portal/internal/models"
)

// ExtractCreatedGame scans a confirmed transaction receipt for the first
// GameCreated(uint256 gameId, address gameAddress) log emitted by the
// factory. Logs that do not match the event (other contracts, other events,
// malformed data) are skipped. Returns false when the receipt failed or no
// matching log exists.
func ExtractCreatedGame(receipt *types.Receipt, factoryABI abi.ABI) (*models.GameCreatedEvent, bool) {
	if receipt == nil || receipt.Status != types.ReceiptStatusSuccessful {
		return nil, false
	}

	event, ok := factoryABI.Events[constants.GameCreatedEventName]
	if !ok {
		return nil, false
	}

	for _, entry := range receipt.Logs {
		if entry == nil || len(entry.Topics) == 0 || entry.Topics[0] != event.ID {
			continue
		}

		values, err := event.Inputs.Unpack(entry.Data)
		if err != nil || len(values) < 2 {
			continue
		}

		gameID, ok := values[0].(*big.Int)
		if !ok {
			continue
		}
		gameAddress, ok := values[1].(common.Address)
		if !ok {
			continue
		}

		return &models.GameCreatedEvent{
			GameID:          gameID.Int64(),
			GameAddress:     gameAddress.Hex(),
			TransactionHash: receipt.TxHash.Hex(),
		}, true
	}

	return nil, false
}
