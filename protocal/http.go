package protocal

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"storefront/configs"
	httpAdapter "storefront/internal/adapters/input/http"
	"storefront/internal/adapters/output/backend"
	"storefront/internal/adapters/output/localstate"
	"storefront/internal/adapters/output/ws"
	"storefront/internal/application"
	"storefront/pkg/database_driver/gorm"

	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
)

type config struct {
	ENV string `mapstructure:"env"`
}

// ServeHTTP func
func ServeHTTP() error {
	app := fiber.New()
	var cfg config
	flag.StringVar(&cfg.ENV, "env", "", "the environment to use")
	flag.Parse()
	configs.InitViper("./configs", cfg.ENV)
	logrus.Info(configs.GetViper().Env)
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept,Authorization",
	}))
	dbConGorm, err := gorm.ConnectToSQLite(configs.GetViper().LocalState.Path)
	if err != nil {
		return err
	}

	// Wire up the hexagonal architecture layers
	// Output adapters (local state and backend clients)
	localStore, err := localstate.NewSQLiteStore(dbConGorm.SQLite)
	if err != nil {
		return err
	}
	deviceID, err := localStore.EnsureDeviceID()
	if err != nil {
		return err
	}
	backendClient := backend.NewClient(configs.GetViper().Backend)
	chatSocket := ws.NewChatSocket(configs.GetViper().Backend.SocketURL, deviceID)

	// Application services (use cases)
	cartSrv := application.NewCartService(localStore, backend.NewCartClient(backendClient))
	authSrv := application.NewAuthService(backend.NewAuthClient(backendClient), cartSrv)
	catalogSrv := application.NewCatalogService(backend.NewCatalogClient(backendClient), cartSrv)
	orderSrv := application.NewOrderService(backend.NewOrderClient(backendClient), cartSrv)
	accountSrv := application.NewAccountService(backend.NewAuthClient(backendClient), cartSrv)
	chatSrv := application.NewChatService(backend.NewChatClient(backendClient), chatSocket, cartSrv)

	// Restore session and cart from the previous run before serving requests.
	cartSrv.Hydrate(context.Background())

	// Input adapter (HTTP handler)
	hdl := httpAdapter.New(cartSrv, authSrv, catalogSrv, orderSrv, accountSrv, chatSrv, dbConGorm.SQLite)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		for range c {
			log.Println("Gracefull shut down ...")
			if err := chatSocket.Close(); err != nil {
				log.Println("Error when closing chat socket: ", err)
			}
			gorm.DisconnectSQLite(dbConGorm.SQLite)
			err := app.Shutdown()
			if err != nil {
				log.Println("Error when shutdown server: ", err)
			}
		}
	}()

	app.Get("/swagger/*", swagger.HandlerDefault) // default
	app.Get("/health", hdl.HealthCheck)

	magnolia := app.Group("/v1/api")
	{
		magnolia.Get("/cart", hdl.GetCart)
		magnolia.Post("/cart/items", hdl.AddCartItem)
		magnolia.Put("/cart/items/:productId", hdl.UpdateCartItem)
		magnolia.Delete("/cart/items/:productId", hdl.RemoveCartItem)
		magnolia.Delete("/cart", hdl.ClearCart)

		magnolia.Post("/auth/login", hdl.Login)
		magnolia.Post("/auth/register", hdl.Register)
		magnolia.Post("/auth/logout", hdl.Logout)
		magnolia.Get("/auth/me", hdl.Me)
		magnolia.Put("/auth/profile", hdl.UpdateProfile)

		magnolia.Get("/products", hdl.ListProducts)
		magnolia.Get("/products/:id", hdl.GetProduct)
		magnolia.Post("/products", hdl.AddProduct)

		magnolia.Get("/orders", hdl.MyOrders)
		magnolia.Get("/orders/:id/updates", hdl.TrackOrder)
		magnolia.Post("/checkout/mpesa", hdl.InitiateCheckout)
		magnolia.Get("/checkout/status/:id", hdl.CheckoutStatus)

		magnolia.Get("/admin/orders", hdl.AllOrders)
		magnolia.Put("/admin/orders/:id/status", hdl.UpdateOrderStatus)
		magnolia.Get("/admin/users", hdl.ListUsers)
		magnolia.Put("/admin/users/:id", hdl.UpdateUser)
		magnolia.Delete("/admin/users/:id", hdl.DeleteUser)

		magnolia.Get("/chat/admins", hdl.ListAdmins)
		magnolia.Get("/chat/messages", hdl.ChatHistory)
		magnolia.Post("/chat/messages", hdl.SendMessage)
		magnolia.Get("/chat/stream", hdl.StreamMessages)
		magnolia.Get("/admin/chat/partners", hdl.ChatPartners)
	}

	err = app.Listen(":" + configs.GetViper().App.Port)
	if err != nil {
		return err
	}

	logrus.Println("Listerning on port: ", configs.GetViper().App.Port)
	return nil
}
