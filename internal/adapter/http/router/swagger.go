package router

import (
	"fmt"
	"net/http"
)

func registerSwaggerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})

	mux.HandleFunc("/swagger/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, swaggerHTML, "/swagger/openapi.json")
	})

	mux.HandleFunc("/swagger/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(openAPI))
	})
}

const swaggerHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>User Registry API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function() {
      window.ui = SwaggerUIBundle({
        url: "%s",
        dom_id: "#swagger-ui"
      });
    };
  </script>
</body>
</html>`

const openAPI = `{
  "openapi": "3.0.3",
  "info": {
    "title": "User Registry API",
    "version": "1.0.0",
    "description": "CRUD over users owned by managers, with mobile and PAN validation."
  },
  "paths": {
    "/create_user": {
      "post": {
        "summary": "Create a user",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["full_name", "mob_num", "pan_num", "manager_id"],
                "properties": {
                  "full_name": {"type": "string"},
                  "mob_num": {"type": "string", "description": "10 digits, optional +91 or leading 0"},
                  "pan_num": {"type": "string", "description": "5 letters, 4 digits, 1 letter"},
                  "manager_id": {"type": "string"}
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "User created", "content": {"application/json": {"schema": {"type": "object", "properties": {"message": {"type": "string"}, "user_id": {"type": "string"}}}}}},
          "400": {"description": "Missing field, invalid mobile, invalid PAN, or invalid/inactive manager_id"}
        }
      }
    },
    "/get_users": {
      "get": {
        "summary": "List active users",
        "responses": {
          "200": {"description": "Array of active users"}
        }
      },
      "post": {
        "summary": "Query users by a single optional filter",
        "requestBody": {
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "properties": {
                  "user_id": {"type": "string"},
                  "mob_num": {"type": "string"},
                  "manager_id": {"type": "string"}
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Matching active users", "content": {"application/json": {"schema": {"type": "object", "properties": {"users": {"type": "array", "items": {"type": "object"}}}}}}}
        }
      }
    },
    "/delete_user": {
      "post": {
        "summary": "Delete a user by user_id or mob_num",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "properties": {
                  "user_id": {"type": "string"},
                  "mob_num": {"type": "string"}
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "User deleted"},
          "400": {"description": "Neither locator supplied"},
          "404": {"description": "User not found"}
        }
      }
    },
    "/update_user": {
      "post": {
        "summary": "Batch update users; manager change retires the row and creates a successor",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["user_ids", "update_data"],
                "properties": {
                  "user_ids": {"type": "array", "items": {"type": "string"}},
                  "update_data": {
                    "type": "object",
                    "properties": {
                      "full_name": {"type": "string"},
                      "mob_num": {"type": "string"},
                      "pan_num": {"type": "string"},
                      "manager_id": {"type": "string"}
                    }
                  }
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Batch acknowledged"},
          "400": {"description": "Missing user_ids/update_data or invalid manager_id"}
        }
      }
    }
  }
}`
