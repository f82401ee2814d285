package llm

import (
	"golang.org/x/sync/semaphore"
)

// TextSem 文本生成并发上限，避免打爆远端配额
var TextSem = semaphore.NewWeighted(8)
