package cli

const usageTemplate = `
Tgshop Client

Usage:
  tgshop [OPTIONS] COMMAND

Options:
  --version            Show version information
  --server URL         Server URL (default: http://localhost:8080)
  --db PATH            Path to local database (default: tgshop-client.db)
  --init-data STRING   Telegram WebApp initData (or TGSHOP_INIT_DATA env var)
  --preview            Show hidden products with a badge (admin preview)

Commands:
  catalog [--tag NAME] [--search QUERY] [--sort MODE]
                          Show the storefront (sort: default, price-asc,
                          price-desc, popular)
  product <id>            Show product details
  cart                    Show the cart
  cart add <product-id> [variant-id] [qty]
                          Add product to the cart
  cart remove <product-id> [variant-id]
                          Remove a cart line
  cart clear              Empty the cart
  checkout                Place an order (interactive)
  watch                   Live storefront: polls the server and prints
                          incremental updates until interrupted
  status                  Show store info and current user

Admin commands (password is asked once per session):
  admin login             Check and cache the admin password
  admin logout            Drop the cached password
  admin products [--archived]
  admin add-product       Create a product (interactive)
  admin edit-product <id> Edit a product (interactive, empty keeps value)
  admin hide <id> | admin show <id>
  admin archive <id> | admin unarchive <id>
  admin tags | admin add-tag <name> | admin rename-tag <id> <name> | admin delete-tag <id>
  admin promos | admin add-promo | admin delete-promo <id>
  admin orders | admin delete-order <id>
  admin template | admin template-set <file> | admin template-reset

Examples:
  tgshop catalog --search shirt --sort price-asc
  tgshop cart add b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5 2
  tgshop checkout
  tgshop --server https://shop.example.com admin orders
`

// defaultPaymentTemplate — встроенный шаблон платежного сообщения.
// Используется командой template-reset, когда серверный шаблон
// нужно вернуть к заводскому.
const defaultPaymentTemplate = `<b>Оплата заказа</b>

Пожалуйста, выберите удобный вариант оплаты:

<blockquote>
<b>1.</b> Предоплата <b>100 грн</b> — страховка доставки + наложенный платёж.
<b>2.</b> Полная оплата на ФОП.
</blockquote>

<b>Реквизиты для оплаты (ФОП ПриватБанк)</b>

Карта: <code>4246001040134680</code>
IBAN: <code>UA663052990000026005025918119</code>
Получатель: <b>СОЛОХА МАКСИМ АНДРІЙОВИЧ</b>
РНОКПП/ЄДРПОУ: <code>3547612413</code>
Назначение платежа: <i>оплата за услугу / товар</i>

После оплаты, пожалуйста, отправьте подтверждение в ответ на это сообщение.
`
