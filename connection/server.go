package connection

import (
	"mindu/controller/notification"
	"mindu/logger"
	"mindu/metrics"
	"mindu/scheduler"
	"mindu/services"
	"os"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func StartServer() {
	logger.Init()
	log := logger.Get()

	router := gin.Default()

	fb, fcm, err := FBConnection()
	if err != nil {
		log.Fatalf("Failed to initialize Firebase clients: %v", err)
	}

	store := services.NewFirestoreNotificationStore(fb)
	users := services.NewFirestoreUserDirectory(fb)
	push := services.NewFCMPushSender(fcm)

	maxConcurrency, _ := strconv.Atoi(os.Getenv("DISPATCH_MAX_CONCURRENCY"))
	dispatcher := scheduler.NewDispatcher(store, users, push, log, maxConcurrency)

	dispatchScheduler := scheduler.NewDispatchScheduler(dispatcher, log, os.Getenv("DISPATCH_CRON"))
	if err := dispatchScheduler.Start(); err != nil {
		log.Fatalf("Failed to start dispatch scheduler: %v", err)
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})
	router.GET("/metrics", metrics.Handler())

	router.Use(cors.Default())

	notification.ScheduleNotificationController(router, store)
	notification.ListNotificationsController(router, store)
	notification.DispatchController(router, dispatcher)

	router.Run()
}
