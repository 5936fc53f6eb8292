package common

import (
	"fmt"
	"os"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/spf13/cast"
)

var idNode *snowflake.Node

func init() {
	// Node id can be overridden when multiple instances share an id space.
	nodeID := cast.ToInt64(os.Getenv("COACHDESK_NODE_ID")) % 1024
	var err error
	idNode, err = snowflake.NewNode(nodeID)
	if err != nil {
		panic(fmt.Sprintf("snowflake node init: %v", err))
	}
}

// UUIDStr returns a new globally unique identifier in string form.
func UUIDStr() string {
	return idNode.Generate().String()
}

// UUIDint64 returns a new globally unique identifier as int64.
func UUIDint64() int64 {
	return idNode.Generate().Int64()
}

// DateStamp formats t as yyyy-mm-dd, used in export file names.
func DateStamp(t time.Time) string {
	return t.Format("2006-01-02")
}
