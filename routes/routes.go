package routes

import (
	"time"

	"dresshub/app"
	"dresshub/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	s := controllers.GetSrv(a)
	uc := controllers.GetUserController(s.Repo, s.Revoked, s.Cfg)
	itemCtl := controllers.NewItemController(s.Repo)
	cartCtl := controllers.NewCartController(s.Repo)
	rentalCtl := controllers.NewRentalController(s.Repo)
	returnCtl := controllers.NewReturnController(s.Repo)
	wishCtl := controllers.NewWishlistController(s.Repo)

	authMW := app.AuthRequired(a.Config.TokenSecret, s.Revoked)
	seenMW := app.TouchLastSeen(s.Repo, a.RDB, 5*time.Minute)

	// ------------------------------
	// Accounts
	// ------------------------------
	users := r.Group("/users")
	{
		users.POST("/register", uc.Register)
		users.POST("/login", uc.Login)
		users.POST("/logout", uc.Logout)
	}
	usersAuth := r.Group("/users", authMW, seenMW)
	{
		usersAuth.GET("/me", uc.Me)
		usersAuth.PUT("/me", uc.UpdateMe)
	}

	// ------------------------------
	// Catalog (search is public)
	// ------------------------------
	items := r.Group("/items")
	{
		items.GET("", itemCtl.SearchItems)
		items.GET("/:id", itemCtl.GetItem)
	}
	itemsAuth := r.Group("/items", authMW, seenMW)
	{
		itemsAuth.POST("", itemCtl.CreateItem)
		itemsAuth.DELETE("/:id", itemCtl.DeleteItem)
	}

	// ------------------------------
	// Cart
	// ------------------------------
	cart := r.Group("/cart", authMW, seenMW)
	{
		cart.POST("", cartCtl.AddToCart)
		cart.GET("", cartCtl.ListCart)
		cart.DELETE("/:id", cartCtl.RemoveFromCart)
	}

	// ------------------------------
	// Wishlist
	// ------------------------------
	wishlist := r.Group("/wishlist", authMW, seenMW)
	{
		wishlist.POST("", wishCtl.Add)
		wishlist.GET("", wishCtl.List)
		wishlist.DELETE("/:itemId", wishCtl.Remove)
	}

	// ------------------------------
	// Rentals / checkout
	// ------------------------------
	rentals := r.Group("/rentals", authMW, seenMW)
	{
		rentals.POST("/checkout", rentalCtl.Checkout)
		rentals.GET("", rentalCtl.ListRentals) // ?role=owner|renter
	}

	// ------------------------------
	// Returns workflow
	// ------------------------------
	returns := r.Group("/returns", authMW, seenMW)
	{
		returns.POST("", returnCtl.CreateReturn)
		returns.PUT("/:id", returnCtl.UpdateReturn)
		returns.GET("", returnCtl.ListReturns) // ?role=owner|renter
	}
}
