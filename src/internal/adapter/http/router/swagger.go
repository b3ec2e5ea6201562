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
  <title>Retail Ledger API Docs</title>
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
    "title": "Retail Ledger API",
    "version": "1.0.0"
  },
  "paths": {
    "/clients": {
      "post": {
        "summary": "Register individual client",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["nationalId", "fullName", "birthDate", "address"],
                "properties": {
                  "nationalId": {"type": "string"},
                  "fullName": {"type": "string"},
                  "birthDate": {"type": "string", "format": "date"},
                  "address": {"type": "string"}
                }
              }
            }
          }
        },
        "responses": {
          "201": {"description": "Created"},
          "400": {"description": "Validation error"},
          "409": {"description": "Client already exists"}
        }
      },
      "get": {
        "summary": "Get client by national id",
        "parameters": [
          {"name": "nationalId", "in": "query", "required": true, "schema": {"type": "string"}}
        ],
        "responses": {
          "200": {"description": "Client fetched"},
          "404": {"description": "Client not found"}
        }
      }
    },
    "/accounts": {
      "post": {
        "summary": "Open checking account",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["nationalId"],
                "properties": {
                  "nationalId": {"type": "string"}
                }
              }
            }
          }
        },
        "responses": {
          "201": {"description": "Created"},
          "404": {"description": "Client not found"}
        }
      },
      "get": {
        "summary": "List accounts",
        "responses": {
          "200": {"description": "Accounts fetched"}
        }
      }
    },
    "/accounts/deposit": {
      "post": {
        "summary": "Deposit",
        "requestBody": {"$ref": "#/components/requestBodies/Movement"},
        "responses": {
          "200": {"description": "Deposit recorded"},
          "404": {"description": "Client or account not found"},
          "422": {"description": "Transaction rejected"}
        }
      }
    },
    "/accounts/withdraw": {
      "post": {
        "summary": "Withdraw",
        "requestBody": {"$ref": "#/components/requestBodies/Movement"},
        "responses": {
          "200": {"description": "Withdrawal recorded"},
          "404": {"description": "Client or account not found"},
          "422": {"description": "Transaction rejected"}
        }
      }
    },
    "/accounts/statement": {
      "get": {
        "summary": "Account statement",
        "parameters": [
          {"name": "nationalId", "in": "query", "required": true, "schema": {"type": "string"}},
          {"name": "accountNumber", "in": "query", "required": false, "schema": {"type": "integer"}}
        ],
        "responses": {
          "200": {"description": "Statement fetched"},
          "404": {"description": "Client or account not found"}
        }
      }
    }
  },
  "components": {
    "requestBodies": {
      "Movement": {
        "required": true,
        "content": {
          "application/json": {
            "schema": {
              "type": "object",
              "required": ["nationalId", "amount"],
              "properties": {
                "nationalId": {"type": "string"},
                "accountNumber": {"type": "integer"},
                "amount": {"type": "string"}
              }
            }
          }
        }
      }
    }
  }
}`
