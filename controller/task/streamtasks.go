package task

import (
	"io"

	"github.com/gin-gonic/gin"

	"taskflow/model"
	"taskflow/realtime"
)

// StreamTasks pushes the viewer's task list over server-sent events. Every
// event carries the complete, freshly ordered list; the client replaces its
// state rather than patching it.
func StreamTasks(c *gin.Context, sync *realtime.Sync) {
	viewer := realtime.Viewer{
		UID:  c.MustGet("userId").(string),
		Role: c.MustGet("role").(string),
	}

	snapshots := make(chan []model.Task, 1)
	sub := sync.Subscribe(viewer, func(tasks []model.Task) {
		// Latest snapshot wins; a slow client only ever misses stale lists.
		select {
		case snapshots <- tasks:
		default:
			select {
			case <-snapshots:
			default:
			}
			select {
			case snapshots <- tasks:
			default:
			}
		}
	})
	defer sub.Cancel()

	c.Stream(func(w io.Writer) bool {
		select {
		case tasks := <-snapshots:
			c.SSEvent("tasks", tasks)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
