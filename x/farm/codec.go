package farm

import (
	amino "github.com/tendermint/go-amino"
)

// cdc serializes all models and messages of this package.
var cdc = amino.NewCodec()
