package connection

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"taskflow/config"
	authctrl "taskflow/controller/auth"
	taskctrl "taskflow/controller/task"
	userctrl "taskflow/controller/user"
	"taskflow/email"
	"taskflow/notify"
	"taskflow/realtime"
	"taskflow/scheduler"
	"taskflow/services"
	"taskflow/store"
)

// StartServer wires every collaborator once and runs the HTTP server. The
// dispatcher, pipeline and scheduler are constructed here and passed down
// explicitly; nothing hangs off package-level state.
func StartServer() {
	cfg := config.Load()

	ctx := context.Background()
	client, err := FBConnection(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firestore client: %v", err)
	}

	tasks := store.NewTaskStore(client)
	directory := &services.Directory{Client: client}
	dispatcher := email.NewSender(cfg.Email)

	pipeline := &notify.Pipeline{
		Resolver: &notify.Resolver{Directory: directory},
		Renderer: &notify.Renderer{
			AppBaseURL:  cfg.AppBaseURL,
			FromAddress: cfg.Email.Username,
		},
		Dispatcher: dispatcher,
	}
	go pipeline.Run(ctx, tasks.Listen(ctx))

	reminders := scheduler.NewReminderJob(tasks, directory, dispatcher, cfg.Email.Username, cfg.AppBaseURL)
	if err := reminders.Start(); err != nil {
		log.Printf("Failed to start reminder job: %v", err)
	}

	sync := realtime.NewSync(client)

	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	authctrl.SignInController(router, client)
	authctrl.SignUpController(router, client)
	taskctrl.TaskController(router, tasks, directory, sync)
	userctrl.UserController(router, directory)

	router.Run()
}
